package perk

import (
	"errors"
	"slices"
	"testing"
)

func defaultCounter() *Counter {
	return NewCounter(DefaultSources()...)
}

func TestCounterKeys(t *testing.T) {
	want := []string{"Total Perks", "Perks via Player Selection", "Perks via Perk Card Pack"}
	if got := defaultCounter().Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %q, want %q", got, want)
	}

	reversed := NewCounter(PerkCardPack(), PlayerSelection())
	want = []string{"Total Perks", "Perks via Perk Card Pack", "Perks via Player Selection"}
	if got := reversed.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %q, want %q", got, want)
	}

	if got := NewCounter().Keys(); !slices.Equal(got, []string{TotalKey}) {
		t.Errorf("Keys() with no sources = %q, want only the total key", got)
	}
}

func TestNewCounterCopiesSources(t *testing.T) {
	sources := DefaultSources()
	c := NewCounter(sources...)
	sources[0] = Milestone{Label: "Replaced"}

	if got := c.Keys()[1]; got != "Perks via Player Selection" {
		t.Errorf("Keys()[1] = %q after caller mutated its slice", got)
	}
}

func TestPerksByLevelLength(t *testing.T) {
	c := defaultCounter()
	for _, n := range []int{0, 1, 2, 11, MaxLevel, 200} {
		levels, err := c.PerksByLevel(n)
		if err != nil {
			t.Fatalf("PerksByLevel(%d) error = %v", n, err)
		}
		if len(levels) != n {
			t.Errorf("len(PerksByLevel(%d)) = %d", n, len(levels))
		}
		for i, s := range levels {
			if s.Level != i {
				t.Errorf("PerksByLevel(%d)[%d].Level = %d", n, i, s.Level)
			}
		}
	}
}

func TestPerksByLevelZero(t *testing.T) {
	levels, err := defaultCounter().PerksByLevel(0)
	if err != nil {
		t.Fatalf("PerksByLevel(0) error = %v", err)
	}
	if levels == nil || len(levels) != 0 {
		t.Errorf("PerksByLevel(0) = %v, want empty non-nil slice", levels)
	}
}

func TestPerksByLevelNegative(t *testing.T) {
	levels, err := defaultCounter().PerksByLevel(-1)
	if !errors.Is(err, ErrNegativeLevel) {
		t.Fatalf("PerksByLevel(-1) error = %v, want ErrNegativeLevel", err)
	}
	if levels != nil {
		t.Errorf("PerksByLevel(-1) = %v, want nil", levels)
	}

	if _, err := defaultCounter().Grants(-5); !errors.Is(err, ErrNegativeLevel) {
		t.Errorf("Grants(-5) error = %v, want ErrNegativeLevel", err)
	}
}

func TestPerksByLevelTotals(t *testing.T) {
	levels, err := defaultCounter().PerksByLevel(11)
	if err != nil {
		t.Fatalf("PerksByLevel(11) error = %v", err)
	}

	tests := []struct {
		level     int
		total     int
		selection int
		pack      int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 1, 1, 0},
		{3, 2, 2, 0},
		{4, 7, 3, 4},
		{5, 8, 4, 4},
		{6, 13, 5, 8},
		{7, 14, 6, 8},
		{8, 19, 7, 12},
		{9, 20, 8, 12},
		{10, 25, 9, 16},
	}

	for _, tt := range tests {
		s := levels[tt.level]
		if s.Total != tt.total {
			t.Errorf("level %d: Total = %d, want %d", tt.level, s.Total, tt.total)
		}
		if got := s.Value("Perks via Player Selection"); got != tt.selection {
			t.Errorf("level %d: Player Selection = %d, want %d", tt.level, got, tt.selection)
		}
		if got := s.Value("Perks via Perk Card Pack"); got != tt.pack {
			t.Errorf("level %d: Perk Card Pack = %d, want %d", tt.level, got, tt.pack)
		}
	}
}

func TestPerksByLevelMaxLevel(t *testing.T) {
	levels, err := defaultCounter().PerksByLevel(MaxLevel)
	if err != nil {
		t.Fatalf("PerksByLevel(%d) error = %v", MaxLevel, err)
	}
	last := levels[len(levels)-1]
	if last.Level != 60 {
		t.Fatalf("last level = %d, want 60", last.Level)
	}
	// 59 player selections and 14 packs of four.
	if got := last.Value(Key("Player Selection")); got != 59 {
		t.Errorf("Player Selection at 60 = %d, want 59", got)
	}
	if got := last.Value(Key("Perk Card Pack")); got != 56 {
		t.Errorf("Perk Card Pack at 60 = %d, want 56", got)
	}
	if last.Total != 115 {
		t.Errorf("Total at 60 = %d, want 115", last.Total)
	}
}

func TestPerksByLevelInvariants(t *testing.T) {
	c := defaultCounter()
	keys := c.Keys()
	levels, err := c.PerksByLevel(MaxLevel)
	if err != nil {
		t.Fatalf("PerksByLevel error = %v", err)
	}

	for i, s := range levels {
		sum := 0
		for _, key := range keys[1:] {
			sum += s.Value(key)
		}
		if s.Total != sum {
			t.Errorf("level %d: Total = %d, sum of sources = %d", i, s.Total, sum)
		}
		if i == 0 {
			continue
		}

		prev := levels[i-1]
		for _, key := range keys {
			if s.Value(key) < prev.Value(key) {
				t.Errorf("level %d: %s decreased from %d to %d", i, key, prev.Value(key), s.Value(key))
			}
		}

		added := 0
		for _, src := range DefaultSources() {
			if src.IsAvailable(i) {
				added += src.PerkCount()
			}
		}
		if got := s.Total - prev.Total; got != added {
			t.Errorf("level %d: Total grew by %d, want %d", i, got, added)
		}
	}
}

func TestPerksByLevelDoesNotShareMaps(t *testing.T) {
	levels, err := defaultCounter().PerksByLevel(5)
	if err != nil {
		t.Fatalf("PerksByLevel error = %v", err)
	}
	levels[2].Sources[Key("Player Selection")] = 100
	if got := levels[3].Value(Key("Player Selection")); got != 2 {
		t.Errorf("level 3 changed to %d after mutating level 2", got)
	}
}

func TestPerksByLevelRecomputes(t *testing.T) {
	c := defaultCounter()
	first, err := c.PerksByLevel(20)
	if err != nil {
		t.Fatalf("PerksByLevel error = %v", err)
	}
	first[19].Total = -1

	second, err := c.PerksByLevel(20)
	if err != nil {
		t.Fatalf("PerksByLevel error = %v", err)
	}
	if second[19].Total == -1 {
		t.Error("second call returned data shared with the first")
	}
}

func TestPerksByLevelNoSources(t *testing.T) {
	levels, err := NewCounter().PerksByLevel(3)
	if err != nil {
		t.Fatalf("PerksByLevel error = %v", err)
	}
	for _, s := range levels {
		if s.Total != 0 || len(s.Sources) != 0 {
			t.Errorf("level %d = %+v, want zero summary", s.Level, s)
		}
	}
}

func TestGrants(t *testing.T) {
	grants, err := defaultCounter().Grants(7)
	if err != nil {
		t.Fatalf("Grants error = %v", err)
	}

	want := []Grant{
		{Level: 2, Source: "Player Selection", Perks: 1},
		{Level: 3, Source: "Player Selection", Perks: 1},
		{Level: 4, Source: "Player Selection", Perks: 1},
		{Level: 4, Source: "Perk Card Pack", Perks: 4},
		{Level: 5, Source: "Player Selection", Perks: 1},
		{Level: 6, Source: "Player Selection", Perks: 1},
		{Level: 6, Source: "Perk Card Pack", Perks: 4},
	}
	if !slices.Equal(grants, want) {
		t.Errorf("Grants(7) = %+v\nwant %+v", grants, want)
	}
}

func TestSummaryValueUnknownKey(t *testing.T) {
	s := Summary{Total: 3, Sources: map[string]int{Key("A"): 3}}
	if got := s.Value("Perks via B"); got != 0 {
		t.Errorf("Value(unknown) = %d, want 0", got)
	}
	if got := s.Value(TotalKey); got != 3 {
		t.Errorf("Value(TotalKey) = %d, want 3", got)
	}
}
