// Command perkchart charts the perks a character has earned at each level.
//
// Settings come from PERKCHART_* environment variables and can be overridden
// with flags:
//
//	perkchart -output perks.svg
//	perkchart -output - -format txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/cberes/fallout"
	"github.com/cberes/fallout/chart"
	"github.com/cberes/fallout/internal/config"
	"github.com/cberes/fallout/perk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("perkchart: %v", err)
	}

	flag.StringVar(&cfg.Output, "output", cfg.Output, "output file, or - for stdout")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "png, svg or txt (default: from the output extension)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "chart title")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	flag.Parse()

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("perkchart: %v", err)
	}
}

// run computes the perk table for the default sources and writes it to the
// configured output.
func run(cfg config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	fallout.SetLogger(logger)

	format, err := cfg.ChartFormat()
	if err != nil {
		return err
	}

	counter := perk.NewCounter(perk.DefaultSources()...)
	levels, err := counter.PerksByLevel(perk.MaxLevel)
	if err != nil {
		return err
	}

	renderer, err := chart.NewRenderer(format,
		chart.WithSize(cfg.Width, cfg.Height),
		chart.WithTitle(cfg.Title))
	if err != nil {
		return err
	}
	data := chart.NewData(levels, counter.Keys())

	if cfg.Output == config.Stdout {
		return renderer.Render(stdout, data)
	}
	if err := writeFile(cfg.Output, renderer, data); err != nil {
		return err
	}

	logger.Info("chart written",
		"output", cfg.Output,
		"format", string(format),
		"levels", len(levels))
	return nil
}

func writeFile(path string, r chart.Renderer, d chart.Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := r.Render(f, d); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
