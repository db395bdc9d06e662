package perk

// MaxLevel is the exclusive upper bound of the levels charted by default.
const MaxLevel = 61

// Source is a rule that grants perks at some levels.
//
// IsAvailable must depend only on its argument so that each level can be
// evaluated independently.
type Source interface {
	// Name is the display label of the source.
	Name() string
	// PerkCount is the number of perks granted at each qualifying level.
	PerkCount() int
	// IsAvailable reports whether the source grants perks at level.
	IsAvailable(level int) bool
}

// Milestone grants Count perks at every level greater than or equal to
// Threshold. There is no upper bound.
type Milestone struct {
	Label     string
	Threshold int
	Count     int
}

// Name implements Source.
func (m Milestone) Name() string { return m.Label }

// PerkCount implements Source.
func (m Milestone) PerkCount() int { return m.Count }

// IsAvailable implements Source.
func (m Milestone) IsAvailable(level int) bool {
	return level >= m.Threshold
}

// Periodic grants Count perks at every even level in [Low, High) and at every
// multiple of Step from High onward.
//
// Level High itself only qualifies when it is a multiple of Step, even if it
// is even.
type Periodic struct {
	Label string
	Low   int
	High  int
	Step  int
	Count int
}

// Name implements Source.
func (p Periodic) Name() string { return p.Label }

// PerkCount implements Source.
func (p Periodic) PerkCount() int { return p.Count }

// IsAvailable implements Source.
func (p Periodic) IsAvailable(level int) bool {
	if level >= p.Low && level < p.High && level%2 == 0 {
		return true
	}
	return level >= p.High && p.Step > 0 && level%p.Step == 0
}

// PlayerSelection is the perk card the player picks on every level-up from
// level 2.
func PlayerSelection() Milestone {
	return Milestone{Label: "Player Selection", Threshold: 2, Count: 1}
}

// PerkCardPack is the pack of four perk cards awarded at levels 4, 6 and 8,
// then at every fifth level from 10.
func PerkCardPack() Periodic {
	return Periodic{Label: "Perk Card Pack", Low: 4, High: 10, Step: 5, Count: 4}
}

// DefaultSources returns the charted sources in display order.
func DefaultSources() []Source {
	return []Source{PlayerSelection(), PerkCardPack()}
}
