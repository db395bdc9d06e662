package chart

import "errors"

var (
	// ErrUnknownFormat is returned for an output format with no renderer.
	ErrUnknownFormat = errors.New("chart: unknown format")

	// ErrNoData is returned when there are too few levels to draw axes.
	ErrNoData = errors.New("chart: at least two levels are required")
)
