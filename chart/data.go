package chart

import "github.com/cberes/fallout/perk"

// DefaultYLabel labels the value axis.
const DefaultYLabel = "Perks"

// Series is one named line of the chart. Values[i] belongs to Data.Levels[i].
type Series struct {
	Name   string
	Values []float64
}

// Data is everything a renderer draws.
type Data struct {
	YLabel string
	Levels []int
	Series []Series
}

// NewData builds one series per key, in key order, from per-level summaries.
// Keys are read with perk.Summary.Value, so they may name the total or any
// source. Neither argument is modified.
func NewData(levels []perk.Summary, keys []string) Data {
	d := Data{
		YLabel: DefaultYLabel,
		Levels: make([]int, len(levels)),
		Series: make([]Series, len(keys)),
	}
	for i, s := range levels {
		d.Levels[i] = s.Level
	}
	for k, key := range keys {
		values := make([]float64, len(levels))
		for i, s := range levels {
			values[i] = float64(s.Value(key))
		}
		d.Series[k] = Series{Name: key, Values: values}
	}
	return d
}

// Max returns the largest value across all series, or 0 when there are none.
func (d Data) Max() float64 {
	m := 0.0
	for _, s := range d.Series {
		for _, v := range s.Values {
			m = max(m, v)
		}
	}
	return m
}

// levelExtent returns the smallest and largest level.
func (d Data) levelExtent() (lo, hi float64) {
	if len(d.Levels) == 0 {
		return 0, 0
	}
	lo, hi = float64(d.Levels[0]), float64(d.Levels[0])
	for _, l := range d.Levels[1:] {
		lo = min(lo, float64(l))
		hi = max(hi, float64(l))
	}
	return lo, hi
}
