// SPDX-License-Identifier: EPL-2.0

package plotimg

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultWidth          = 512
	DefaultHeight         = 256
	DefaultColor          = "#3232c8"
	DefaultLineWidth      = 0.5 // points
	DefaultPointsPerPixel = 4
	DefaultDPI            = 100
)

// Options controls how Render draws the waveform.
type Options struct {
	Width, Height int // pixels

	// Color is "#rrggbb", "#rgb" or one of the names in NamedColors.
	Color string

	LineWidth float64 // points

	// PointsPerPixel sets the decimation target to Width*PointsPerPixel.
	PointsPerPixel int

	DPI int
}

func DefaultOptions() Options {
	return Options{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Color:          DefaultColor,
		LineWidth:      DefaultLineWidth,
		PointsPerPixel: DefaultPointsPerPixel,
		DPI:            DefaultDPI,
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("%w: %d dpi", ErrInvalidSize, o.DPI)
	}
	if o.LineWidth < 0 {
		return fmt.Errorf("%w: line width %g", ErrInvalidSize, o.LineWidth)
	}
	if _, err := ParseColor(o.Color); err != nil {
		return err
	}

	return nil
}

// NamedColors maps the color names accepted by ParseColor to their hex
// values.
var NamedColors = map[string]string{
	"black": "#000000",
	"blue":  "#0000ff",
	"green": "#008000",
	"red":   "#ff0000",
	"white": "#ffffff",
}

// ParseColor accepts a hex color or a name from NamedColors.
func ParseColor(s string) (color.NRGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := NamedColors[key]; ok {
		key = hex
	}

	if !strings.HasPrefix(key, "#") || (len(key) != 4 && len(key) != 7) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(key)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
