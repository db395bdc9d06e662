package chart

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cberes/fallout"
)

const (
	tickSize     = 6
	tickPadding  = 3
	legendSwatch = 19
	legendRow    = 20
	lineWidth    = 1.5
	axisColor    = "#000000"
)

// PNGRenderer draws a line chart as a PNG image.
type PNGRenderer struct {
	cfg config
}

// fonts holds the faces used for one render.
type fonts struct {
	regular, bold *text.FontSource
	label, strong text.Face
}

func loadFonts(size float64) (*fonts, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("chart: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("chart: load bold font: %w", err)
	}
	return &fonts{
		regular: regular,
		bold:    bold,
		label:   regular.Face(size),
		strong:  bold.Face(size),
	}, nil
}

func (f *fonts) Close() error {
	err := f.regular.Close()
	if berr := f.bold.Close(); err == nil {
		err = berr
	}
	return err
}

// Render implements Renderer.
func (r *PNGRenderer) Render(w io.Writer, d Data) error {
	if err := checkDrawable(d); err != nil {
		return err
	}

	f, err := loadFonts(r.cfg.fontSize)
	if err != nil {
		return err
	}
	defer f.Close()

	width, height := float64(r.cfg.width), float64(r.cfg.height)
	m := r.cfg.margins
	x := levelScale(d, m.Left, width-m.Right)
	y := valueScale(d, height-m.Bottom, m.Top)

	dc := gg.NewContext(r.cfg.width, r.cfg.height)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.SetFont(f.label)

	r.drawXAxis(dc, x, height-m.Bottom)
	r.drawYAxis(dc, f, y, d.YLabel, m.Left)
	r.drawLegend(dc, d, m.Left+1, m.Top+10)
	if err := r.drawSeries(dc, d, x, y); err != nil {
		return err
	}
	r.drawTitle(dc, f)

	fallout.Logger().Debug("chart: rendered png",
		"width", r.cfg.width,
		"height", r.cfg.height,
		"series", len(d.Series),
		"y_max", y.Domain[1])

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("chart: encode png: %w", err)
	}
	return nil
}

// drawXAxis draws the level axis along the bottom with no outer ticks.
func (r *PNGRenderer) drawXAxis(dc *gg.Context, x LinearScale, baseline float64) {
	dc.SetHexColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(x.Range[0], baseline, x.Range[1], baseline)
	_ = dc.Stroke()

	for _, v := range x.Ticks(r.cfg.xTickCount()) {
		px := x.Map(v)
		dc.DrawLine(px, baseline, px, baseline+tickSize)
		_ = dc.Stroke()
		dc.DrawStringAnchored(formatTick(v), px, baseline+tickSize+tickPadding, 0.5, 1)
	}
}

// drawYAxis draws the value ticks without a domain line and names the axis
// next to the highest tick.
func (r *PNGRenderer) drawYAxis(dc *gg.Context, f *fonts, y LinearScale, label string, left float64) {
	dc.SetHexColor(axisColor)
	dc.SetLineWidth(1)

	ticks := y.Ticks(yTickCount)
	for _, v := range ticks {
		py := y.Map(v)
		dc.DrawLine(left-tickSize, py, left, py)
		_ = dc.Stroke()
		dc.DrawStringAnchored(formatTick(v), left-tickSize-tickPadding, py, 1, 0.5)
	}
	if len(ticks) == 0 || label == "" {
		return
	}

	dc.SetFont(f.strong)
	dc.DrawStringAnchored(label, left+tickPadding, y.Map(ticks[len(ticks)-1]), 0, 0.5)
	dc.SetFont(f.label)
}

// drawLegend lists the series bottom-up so the first series ends up last.
func (r *PNGRenderer) drawLegend(dc *gg.Context, d Data, ox, oy float64) {
	n := len(d.Series)
	for row := range n {
		i := n - 1 - row
		top := oy + float64(row*legendRow)

		dc.SetHexColor(SeriesColor(i))
		dc.DrawRectangle(ox, top, legendSwatch, legendSwatch)
		_ = dc.Fill()

		dc.SetHexColor(axisColor)
		dc.DrawStringAnchored(d.Series[i].Name, ox+legendSwatch+5, top+legendSwatch/2.0, 0, 0.5)
	}
}

func (r *PNGRenderer) drawSeries(dc *gg.Context, d Data, x, y LinearScale) error {
	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for i, s := range d.Series {
		if len(s.Values) == 0 {
			continue
		}
		dc.SetHexColor(SeriesColor(i))
		for j, v := range s.Values {
			px, py := x.Map(float64(d.Levels[j])), y.Map(v)
			if j == 0 {
				dc.MoveTo(px, py)
				continue
			}
			dc.LineTo(px, py)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("chart: stroke %q: %w", s.Name, err)
		}
	}
	return nil
}

func (r *PNGRenderer) drawTitle(dc *gg.Context, f *fonts) {
	if r.cfg.title == "" {
		return
	}
	dc.SetFont(f.strong)
	dc.SetHexColor(axisColor)
	dc.DrawStringAnchored(r.cfg.title, float64(r.cfg.width)/2, r.cfg.margins.Top/2, 0.5, 0.5)
	dc.SetFont(f.label)
}
