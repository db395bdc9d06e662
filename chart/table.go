package chart

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TextRenderer writes the chart data as a right-aligned table.
type TextRenderer struct {
	cfg config
}

// Render implements Renderer. Unlike the chart formats it accepts any number
// of levels, including none.
func (r *TextRenderer) Render(w io.Writer, d Data) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	if r.cfg.title != "" {
		if _, err := fmt.Fprintln(w, r.cfg.title); err != nil {
			return fmt.Errorf("chart: write table: %w", err)
		}
	}

	header := make([]string, 0, len(d.Series)+1)
	header = append(header, "Level")
	for _, s := range d.Series {
		header = append(header, s.Name)
	}
	writeRow(tw, header)

	row := make([]string, len(d.Series)+1)
	for i, level := range d.Levels {
		row[0] = p.Sprintf("%d", level)
		for k, s := range d.Series {
			row[k+1] = p.Sprint(number.Decimal(s.Values[i]))
		}
		writeRow(tw, row)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("chart: write table: %w", err)
	}
	return nil
}

// writeRow terminates every cell so AlignRight pads the last column too.
func writeRow(w io.Writer, cells []string) {
	_, _ = io.WriteString(w, strings.Join(cells, "\t")+"\t\n")
}
