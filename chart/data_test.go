package chart

import (
	"slices"
	"testing"

	"github.com/cberes/fallout/perk"
)

// perkData returns chart data for the default sources up to maxLevel.
func perkData(t *testing.T, maxLevel int) Data {
	t.Helper()

	counter := perk.NewCounter(perk.DefaultSources()...)
	levels, err := counter.PerksByLevel(maxLevel)
	if err != nil {
		t.Fatalf("PerksByLevel(%d) error = %v", maxLevel, err)
	}
	return NewData(levels, counter.Keys())
}

func TestNewData(t *testing.T) {
	d := perkData(t, 7)

	if d.YLabel != DefaultYLabel {
		t.Errorf("YLabel = %q, want %q", d.YLabel, DefaultYLabel)
	}
	if want := []int{0, 1, 2, 3, 4, 5, 6}; !slices.Equal(d.Levels, want) {
		t.Errorf("Levels = %v, want %v", d.Levels, want)
	}

	want := []Series{
		{Name: "Total Perks", Values: []float64{0, 0, 1, 2, 7, 8, 13}},
		{Name: "Perks via Player Selection", Values: []float64{0, 0, 1, 2, 3, 4, 5}},
		{Name: "Perks via Perk Card Pack", Values: []float64{0, 0, 0, 0, 4, 4, 8}},
	}
	if len(d.Series) != len(want) {
		t.Fatalf("len(Series) = %d, want %d", len(d.Series), len(want))
	}
	for i := range want {
		if d.Series[i].Name != want[i].Name {
			t.Errorf("Series[%d].Name = %q, want %q", i, d.Series[i].Name, want[i].Name)
		}
		if !slices.Equal(d.Series[i].Values, want[i].Values) {
			t.Errorf("Series[%d].Values = %v, want %v", i, d.Series[i].Values, want[i].Values)
		}
	}
}

func TestNewDataDoesNotModifyInput(t *testing.T) {
	counter := perk.NewCounter(perk.DefaultSources()...)
	levels, err := counter.PerksByLevel(5)
	if err != nil {
		t.Fatalf("PerksByLevel error = %v", err)
	}
	keys := counter.Keys()
	keysBefore := slices.Clone(keys)
	totalBefore := levels[4].Total

	d := NewData(levels, keys)
	d.Series[0].Values[4] = 99
	d.Levels[0] = 42

	if !slices.Equal(keys, keysBefore) {
		t.Errorf("keys changed to %q", keys)
	}
	if levels[4].Total != totalBefore || levels[0].Level != 0 {
		t.Error("summaries changed after editing chart data")
	}
}

func TestDataMax(t *testing.T) {
	if got := perkData(t, perk.MaxLevel).Max(); got != 115 {
		t.Errorf("Max() = %v, want 115", got)
	}
	if got := (Data{}).Max(); got != 0 {
		t.Errorf("Max() of empty data = %v, want 0", got)
	}
}

func TestDataLevelExtent(t *testing.T) {
	lo, hi := Data{Levels: []int{3, 1, 9, 4}}.levelExtent()
	if lo != 1 || hi != 9 {
		t.Errorf("levelExtent() = (%v, %v), want (1, 9)", lo, hi)
	}
}
