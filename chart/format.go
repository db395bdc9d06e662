package chart

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatText Format = "txt"
)

// Renderer writes Data in one format.
type Renderer interface {
	Render(w io.Writer, d Data) error
}

// ParseFormat parses a format name, ignoring case. "text" is accepted for
// FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG, FormatText:
		return f, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format, opts ...Option) (Renderer, error) {
	cfg := newConfig(opts)
	switch format {
	case FormatPNG:
		return &PNGRenderer{cfg: cfg}, nil
	case FormatSVG:
		return &SVGRenderer{cfg: cfg}, nil
	case FormatText:
		return &TextRenderer{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func checkDrawable(d Data) error {
	if len(d.Levels) < 2 {
		return fmt.Errorf("%w: got %d", ErrNoData, len(d.Levels))
	}
	return nil
}
