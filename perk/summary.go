package perk

import "maps"

const (
	// TotalKey labels the total across all sources.
	TotalKey = "Total Perks"

	// KeyPrefix is prepended to a source name to label its running count.
	KeyPrefix = "Perks via "
)

// Key returns the summary key of the source with the given name.
func Key(sourceName string) string {
	return KeyPrefix + sourceName
}

// Grant is one source granting perks at one level.
type Grant struct {
	Level  int
	Source string
	Perks  int
}

// Summary holds cumulative perk counts up to and including Level.
//
// Sources is keyed by [Key] of each source name. Total always equals the sum
// of the values in Sources.
type Summary struct {
	Level   int
	Total   int
	Sources map[string]int
}

// Value returns the count stored under key, which is either [TotalKey] or a
// key returned by [Key]. Unknown keys read as zero.
func (s Summary) Value(key string) int {
	if key == TotalKey {
		return s.Total
	}
	return s.Sources[key]
}

// next copies s, moves it to level and adds the grants made at that level.
// The receiver is left untouched.
func (s Summary) next(level int, grants []Grant) Summary {
	out := Summary{
		Level:   level,
		Total:   s.Total,
		Sources: maps.Clone(s.Sources),
	}
	for _, g := range grants {
		out.Sources[Key(g.Source)] += g.Perks
		out.Total += g.Perks
	}
	return out
}
