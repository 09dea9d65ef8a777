// SPDX-License-Identifier: EPL-2.0

package ffmpeg

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	DefaultWidth      = 640
	DefaultHeight     = 240
	DefaultBackground = "#c0c0c0"
	DefaultPeakColor  = "#3232c8"
	DefaultRMSColor   = "#6464dc"
)

// Options describes the picture ffmpeg draws. Colors are passed to ffmpeg
// verbatim, so anything its color syntax accepts works ("red", "#3232c8",
// "0x3232c8@0.5").
type Options struct {
	Width, Height int

	Background string
	PeakColor  string
	RMSColor   string

	// SplitChannels draws every channel in its own band.
	SplitChannels bool
}

func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Background:    DefaultBackground,
		PeakColor:     DefaultPeakColor,
		RMSColor:      DefaultRMSColor,
		SplitChannels: true,
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}

	for _, c := range []struct{ name, value string }{
		{"background", o.Background},
		{"peak", o.PeakColor},
		{"rms", o.RMSColor},
	} {
		if err := ValidateColor(c.value); err != nil {
			return fmt.Errorf("%s color: %w", c.name, err)
		}
	}

	return nil
}

// graphMeta holds the characters that separate options, filters and links
// in a filter graph.
const graphMeta = `:;,[]='\`

// ValidateColor rejects colors that would change the meaning of the filter
// graph they are spliced into.
func ValidateColor(c string) error {
	if c == "" {
		return fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if strings.ContainsAny(c, graphMeta) || strings.ContainsFunc(c, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}

	return nil
}
