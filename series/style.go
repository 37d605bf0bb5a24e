// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"image/color"
)

// Style holds the pen and marker used to draw a [Series].
type Style struct {

	// Line is the pen used for the connecting line.
	Line LineStyle

	// Point is the optional marker drawn at each sample.
	Point PointStyle
}

// NewStyle returns a new Style with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Line.Defaults()
	st.Point.Defaults()
}

// Patterns are the stroke patterns available for a pen.
type Patterns int32 //enums:enum

const (
	// Solid is a continuous line.
	Solid Patterns = iota

	// Dash is a dashed line.
	Dash

	// Dot is a dotted line.
	Dot

	// DashDot alternates dashes and dots.
	DashDot

	// DashDotDot alternates a dash and two dots.
	DashDotDot

	// NoLine draws nothing, leaving only markers.
	NoLine
)

// Dashes returns the on/off lengths of the pattern for a pen of the
// given width; nil means solid.
func (p Patterns) Dashes(width float64) []float64 {
	w := max(width, 1)
	switch p {
	case Dash:
		return []float64{4 * w, 2 * w}
	case Dot:
		return []float64{w, 2 * w}
	case DashDot:
		return []float64{4 * w, 2 * w, w, 2 * w}
	case DashDotDot:
		return []float64{4 * w, 2 * w, w, 2 * w, w, 2 * w}
	}
	return nil
}

// LineStyle is a pen: color, width and stroke pattern.
type LineStyle struct {

	// Color of the line.
	Color color.Color

	// Width in pixels. Zero disables the line.
	Width float64

	// Pattern is the stroke pattern.
	Pattern Patterns
}

func (ls *LineStyle) Defaults() {
	ls.Color = color.RGBA{200, 200, 200, 255}
	ls.Width = 1
	ls.Pattern = Solid
}

// IsOn reports whether the line is drawn at all.
func (ls *LineStyle) IsOn() bool {
	return ls.Color != nil && ls.Width > 0 && ls.Pattern != NoLine
}

// Shapes are the marker shapes.
type Shapes int32 //enums:enum

const (
	// Ring is the outline of a circle
	Ring Shapes = iota

	// Circle is a solid circle
	Circle

	// Square is the outline of a square
	Square

	// Box is a filled square
	Box

	// Triangle is the outline of a triangle
	Triangle

	// Pyramid is a filled triangle
	Pyramid

	// Plus is a plus sign
	Plus

	// Cross is a big X
	Cross
)

// PointStyle describes the marker drawn at each sample.
type PointStyle struct {

	// On turns markers on.
	On bool

	// Shape of the marker.
	Shape Shapes

	// Size is the full marker size in pixels.
	Size float64

	// Fill is the marker color (the brush).
	Fill color.Color
}

func (ps *PointStyle) Defaults() {
	ps.Shape = Circle
	ps.Size = 8
	ps.Fill = color.RGBA{200, 200, 200, 255}
}

// Stylers is a list of styling functions that set Style properties.
// These are called in the order added.
type Stylers []func(s *Style)

// Add adds a styling function to the list.
func (st *Stylers) Add(f func(s *Style)) {
	*st = append(*st, f)
}

// Run runs the list of styling functions on given [Style] object.
func (st *Stylers) Run(s *Style) {
	for _, f := range *st {
		f(s)
	}
}

// NewStyle returns a new Style object with styling functions applied
// on top of Style defaults.
func (st *Stylers) NewStyle() *Style {
	s := NewStyle()
	st.Run(s)
	return s
}
