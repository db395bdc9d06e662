package chart

import (
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cberes/fallout"
)

// SVGRenderer draws a line chart as an SVG document.
type SVGRenderer struct {
	cfg config
}

// Render implements Renderer.
func (r *SVGRenderer) Render(w io.Writer, d Data) error {
	if err := checkDrawable(d); err != nil {
		return err
	}

	m := r.cfg.margins
	x := levelScale(d, m.Left, float64(r.cfg.width)-m.Right)
	y := valueScale(d, float64(r.cfg.height)-m.Bottom, m.Top)

	xs := make([]float64, len(d.Levels))
	for i, l := range d.Levels {
		xs[i] = float64(l)
	}

	series := make([]gochart.Series, 0, len(d.Series))
	for i, s := range d.Series {
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: s.Values,
			Style: gochart.Style{
				StrokeColor: hexColor(SeriesColor(i)),
				StrokeWidth: lineWidth,
			},
		})
	}

	ch := gochart.Chart{
		Title:  r.cfg.title,
		Width:  r.cfg.width,
		Height: r.cfg.height,
		Background: gochart.Style{Padding: gochart.Box{
			Top:    int(m.Top),
			Right:  int(m.Right),
			Bottom: int(m.Bottom),
			Left:   int(m.Left),
		}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: x.Domain[0], Max: x.Domain[1]},
			Ticks: chartTicks(x.Ticks(r.cfg.xTickCount())),
		},
		YAxis: gochart.YAxis{
			Name:  d.YLabel,
			Range: &gochart.ContinuousRange{Min: y.Domain[0], Max: y.Domain[1]},
			Ticks: chartTicks(y.Ticks(yTickCount)),
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("chart: render svg: %w", err)
	}

	fallout.Logger().Debug("chart: rendered svg",
		"width", r.cfg.width,
		"height", r.cfg.height,
		"series", len(d.Series),
		"y_max", y.Domain[1])
	return nil
}

func chartTicks(values []float64) []gochart.Tick {
	ticks := make([]gochart.Tick, len(values))
	for i, v := range values {
		ticks[i] = gochart.Tick{Value: v, Label: formatTick(v)}
	}
	return ticks
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
