package perk

import (
	"slices"

	"github.com/cberes/fallout"
)

// Counter accumulates the perks granted by a fixed list of sources.
// A Counter holds no state between calls; every result is computed from
// scratch.
type Counter struct {
	sources []Source
}

// NewCounter creates a counter over sources. The order of sources is the
// order of the keys returned by Keys.
func NewCounter(sources ...Source) *Counter {
	return &Counter{sources: slices.Clone(sources)}
}

// Keys returns [TotalKey] followed by the key of each source, in the order the
// sources were given to NewCounter. Charts use it as the series order.
func (c *Counter) Keys() []string {
	keys := make([]string, 0, len(c.sources)+1)
	keys = append(keys, TotalKey)
	for _, s := range c.sources {
		keys = append(keys, Key(s.Name()))
	}
	return keys
}

// Grants returns every grant made at levels 0 through maxLevelExclusive-1,
// ordered by level and then by source order.
func (c *Counter) Grants(maxLevelExclusive int) ([]Grant, error) {
	if err := checkBound(maxLevelExclusive); err != nil {
		return nil, err
	}
	return c.grants(maxLevelExclusive), nil
}

// PerksByLevel returns one summary per level from 0 through
// maxLevelExclusive-1. A bound of 0 returns an empty slice; a negative bound
// returns an error wrapping [ErrNegativeLevel].
func (c *Counter) PerksByLevel(maxLevelExclusive int) ([]Summary, error) {
	if err := checkBound(maxLevelExclusive); err != nil {
		return nil, err
	}

	grants := c.grants(maxLevelExclusive)
	byLevel := groupByLevel(grants, maxLevelExclusive)

	levels := make([]Summary, 0, maxLevelExclusive)
	current := c.emptySummary()
	for level := range maxLevelExclusive {
		// A level nobody grants at has a nil slice and carries the totals forward.
		current = current.next(level, byLevel[level])
		levels = append(levels, current)
	}

	fallout.Logger().Debug("perk: counted levels",
		"levels", maxLevelExclusive,
		"sources", len(c.sources),
		"grants", len(grants))
	return levels, nil
}

func (c *Counter) grants(maxLevelExclusive int) []Grant {
	var grants []Grant
	for level := range maxLevelExclusive {
		for _, s := range c.sources {
			if !s.IsAvailable(level) {
				continue
			}
			grants = append(grants, Grant{
				Level:  level,
				Source: s.Name(),
				Perks:  s.PerkCount(),
			})
		}
	}
	return grants
}

// emptySummary has every source key present and set to zero.
func (c *Counter) emptySummary() Summary {
	s := Summary{Sources: make(map[string]int, len(c.sources))}
	for _, src := range c.sources {
		s.Sources[Key(src.Name())] = 0
	}
	return s
}

// groupByLevel indexes grants by level. Levels without grants stay nil.
func groupByLevel(grants []Grant, maxLevelExclusive int) [][]Grant {
	byLevel := make([][]Grant, maxLevelExclusive)
	for _, g := range grants {
		byLevel[g.Level] = append(byLevel[g.Level], g)
	}
	return byLevel
}
