package chart

import (
	"math"
	"strconv"
)

// Thresholds that pick a 10, 5 or 2 multiple when rounding a tick step.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// LinearScale maps an ascending domain onto a pixel range. The range may be
// inverted (Range[0] > Range[1]), as it is for a y axis.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

// Map converts a domain value to a range value. A zero-width domain maps
// everything to the middle of the range.
func (s LinearScale) Map(v float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	if d1 == d0 {
		return (r0 + r1) / 2
	}
	return r0 + (v-d0)/(d1-d0)*(r1-r0)
}

// Ticks returns roughly count round values spanning the domain. Steps are
// 1, 2 or 5 times a power of ten.
func (s LinearScale) Ticks(count int) []float64 {
	start, stop := s.Domain[0], s.Domain[1]
	if start == stop {
		return []float64{start}
	}
	step := tickStep(start, stop, count)
	if step == 0 {
		return nil
	}

	var ticks []float64
	if step >= 1 {
		for i := math.Ceil(start / step); i <= math.Floor(stop/step); i++ {
			ticks = append(ticks, i*step)
		}
		return ticks
	}
	// Divide by the inverse so fractional steps stay exact in decimal.
	inv := math.Round(1 / step)
	for i := math.Ceil(start * inv); i <= math.Floor(stop*inv); i++ {
		ticks = append(ticks, i/inv)
	}
	return ticks
}

// Nice extends the domain outward to tick boundaries for the given count.
func (s LinearScale) Nice(count int) LinearScale {
	start, stop := s.Domain[0], s.Domain[1]
	prev := 0.0
	for range 10 {
		step := tickStep(start, stop, count)
		if step == 0 || step == prev {
			break
		}
		start = math.Floor(start/step) * step
		stop = math.Ceil(stop/step) * step
		prev = step
	}
	s.Domain = [2]float64{start, stop}
	return s
}

// tickStep returns the distance between ticks covering [start, stop] with
// about count ticks, or 0 when no step exists.
func tickStep(start, stop float64, count int) float64 {
	if count <= 0 || stop <= start {
		return 0
	}
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	rem := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case rem >= e10:
		factor = 10
	case rem >= e5:
		factor = 5
	case rem >= e2:
		factor = 2
	}
	return factor * math.Pow(10, power)
}

// valueScale builds the y scale: zero to the nicely rounded maximum. An empty
// chart still gets a unit domain so the axis has a length.
func valueScale(d Data, bottom, top float64) LinearScale {
	hi := d.Max()
	if hi <= 0 {
		hi = 1
	}
	return LinearScale{Domain: [2]float64{0, hi}, Range: [2]float64{bottom, top}}.Nice(yTickCount)
}

// levelScale builds the x scale over the level extent.
func levelScale(d Data, left, right float64) LinearScale {
	lo, hi := d.levelExtent()
	return LinearScale{Domain: [2]float64{lo, hi}, Range: [2]float64{left, right}}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
