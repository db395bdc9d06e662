// Package chart renders per-level perk totals.
//
// # Data
//
// [NewData] converts the output of perk.Counter into one [Series] per key,
// sharing a single list of levels for the x axis. The input is only read.
//
// # Renderers
//
// Three formats are supported:
//   - [FormatPNG]: raster line chart drawn with github.com/gogpu/gg
//   - [FormatSVG]: vector line chart drawn with github.com/wcharczuk/go-chart/v2
//   - [FormatText]: aligned table, one row per level
//
// Both charts use the same layout: a linear level axis along the bottom, a
// linear perk axis on the left starting at zero and rounded up to a tick
// boundary, a legend in the top-left corner and one colored line per series.
//
//	r, err := chart.NewRenderer(chart.FormatPNG, chart.WithSize(1000, 600))
//	if err != nil {
//	    return err
//	}
//	err = r.Render(f, chart.NewData(levels, counter.Keys()))
package chart
