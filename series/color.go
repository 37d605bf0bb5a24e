// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// single-letter color codes
var letterColors = map[string]color.RGBA{
	"r": {255, 0, 0, 255},
	"g": {0, 255, 0, 255},
	"b": {0, 0, 255, 255},
	"c": {0, 255, 255, 255},
	"m": {255, 0, 255, 255},
	"y": {255, 255, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

// ParseColor parses a "#rrggbb" hex color or a single-letter
// code (r, g, b, c, m, y, k, w).
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := letterColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("series.ParseColor: %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// MustColor is [ParseColor] for literal colors; it panics on error.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha scaled by a in [0, 1],
// as a non-premultiplied color.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*max(0, min(a, 1)) + 0.5)
	return n
}
