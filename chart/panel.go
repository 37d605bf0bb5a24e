// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/plotlessons/samples"
	"cogentcore.org/plotlessons/series"
)

// TextStyle is the styling of a title or axis label.
type TextStyle struct {

	// Color of the text. Nil uses the panel foreground.
	Color color.Color

	// Size is the font size in points.
	Size float64

	Bold   bool
	Italic bool
}

// Label is a piece of text with a style.
type Label struct {
	Text string

	// Units, if set, are shown in parentheses after the text.
	Units string

	Style TextStyle
}

// String returns the label text as drawn.
func (lb *Label) String() string {
	if lb.Units == "" {
		return lb.Text
	}
	return lb.Text + " (" + lb.Units + ")"
}

// Legend configures the series legend.
type Legend struct {
	On bool

	// Offset is the position of the legend box from the panel edge:
	// positive X anchors to the left edge and negative X to the right,
	// positive Y anchors to the top edge and negative Y to the bottom.
	Offset [2]float64

	// TextSize is the label font size in points.
	TextSize float64
}

// Grid configures the background grid lines.
type Grid struct {
	X, Y bool

	// Alpha is the grid line opacity in [0, 1].
	Alpha float64
}

// AxisRange is an explicit data range for one axis, extended on each
// side by Pad times its span.
type AxisRange struct {
	Set bool
	minmax.F64
	Pad float64
}

// Padded returns the range including padding.
func (ar *AxisRange) Padded() minmax.F64 {
	d := ar.Range() * ar.Pad
	return minmax.F64{Min: ar.Min - d, Max: ar.Max + d}
}

// Panel is one plot area within a [Window], holding zero or more series
// plus its decorations. Decorations are set once; series data change.
type Panel struct {
	Title  Label
	XLabel Label
	YLabel Label
	Legend Legend
	Grid   Grid

	XRange AxisRange
	YRange AxisRange

	// HideAxes turns off axis lines, ticks and labels.
	HideAxes bool

	// Foreground is the color of axes and default text.
	Foreground color.Color

	// Series are drawn in the order added.
	Series []*series.Series
}

// NewPanel returns a new Panel with default decorations.
func NewPanel() *Panel {
	return &Panel{Foreground: color.RGBA{150, 150, 150, 255}, Legend: Legend{Offset: [2]float64{30, 30}, TextSize: 9}}
}

// SetTitle sets the panel title.
func (pn *Panel) SetTitle(text string, st TextStyle) *Panel {
	pn.Title = Label{Text: text, Style: st}
	return pn
}

// SetLabel sets the label of the "left" or "bottom" axis.
func (pn *Panel) SetLabel(position, text, units string, st TextStyle) *Panel {
	lb := Label{Text: text, Units: units, Style: st}
	switch position {
	case "left":
		pn.YLabel = lb
	case "bottom":
		pn.XLabel = lb
	}
	return pn
}

// AddLegend turns on the legend at the given offset.
func (pn *Panel) AddLegend(dx, dy float64) *Panel {
	pn.Legend.On = true
	pn.Legend.Offset = [2]float64{dx, dy}
	return pn
}

// ShowGrid turns on grid lines for the given axes.
func (pn *Panel) ShowGrid(x, y bool, alpha float64) *Panel {
	pn.Grid = Grid{X: x, Y: y, Alpha: alpha}
	return pn
}

// SetXRange fixes the X axis range, with fractional padding.
func (pn *Panel) SetXRange(mn, mx, pad float64) *Panel {
	pn.XRange = AxisRange{Set: true, F64: minmax.F64{Min: mn, Max: mx}, Pad: pad}
	return pn
}

// SetYRange fixes the Y axis range, with fractional padding.
func (pn *Panel) SetYRange(mn, mx, pad float64) *Panel {
	pn.YRange = AxisRange{Set: true, F64: minmax.F64{Min: mn, Max: mx}, Pad: pad}
	return pn
}

// AutoRange fixes both ranges to the extent of the given sequence.
// Nothing is changed for an empty sequence.
func (pn *Panel) AutoRange(sq samples.Sequence, xpad, ypad float64) {
	xr, yr := sq.Range()
	if !xr.IsValid() {
		return
	}
	pn.SetXRange(xr.Min, xr.Max, xpad)
	pn.SetYRange(yr.Min, yr.Max, ypad)
}

// Plot adds a new series with the given data and stylers.
func (pn *Panel) Plot(name string, data samples.Sequence, stylers ...func(s *series.Style)) *series.Series {
	sr := series.New(name, data, stylers...)
	pn.Series = append(pn.Series, sr)
	return sr
}
