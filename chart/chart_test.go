// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/plotlessons/samples"
	"cogentcore.org/plotlessons/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func temperature(t *testing.T) samples.Sequence {
	sq, err := samples.FromInts([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []int{30, 32, 34, 32, 33, 31, 29, 32, 35, 45})
	require.NoError(t, err)
	return sq
}

func newTestWindow(t *testing.T) *Window {
	w, err := NewWindow(400, 300)
	require.NoError(t, err)
	require.NoError(t, w.SetBackground("#121317"))
	pn := w.Main()
	pn.SetTitle("Temperature Plot", TextStyle{Size: 10, Bold: true})
	pn.SetLabel("left", "Temperature", "°C", TextStyle{Size: 10})
	pn.SetLabel("bottom", "Hour", "H", TextStyle{Size: 10})
	pn.AddLegend(-10, 10)
	pn.ShowGrid(true, true, 0.5)
	pn.SetXRange(1, 10, 0.1)
	pn.SetYRange(29, 45, 0.1)
	pn.Plot("Sensor 1", temperature(t), func(s *series.Style) {
		s.Line.Color = series.MustColor("#dcdcdc")
		s.Point.On = true
		s.Point.Shape = series.Plus
		s.Point.Fill = series.MustColor("r")
	})
	return w
}

// countPixels returns the number of pixels of img for which f is true.
func countPixels(img *image.RGBA, f func(c color.RGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if f(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func reddish(c color.RGBA) bool {
	return int(c.R) > int(c.G)+50 && int(c.R) > int(c.B)+50
}

func TestNewWindowInvalid(t *testing.T) {
	_, err := NewWindow(0, 10)
	assert.Error(t, err)
	w, err := NewWindow(10, 10)
	require.NoError(t, err)
	assert.Error(t, w.SetBackground("nope"))
}

func TestRender(t *testing.T) {
	w := newTestWindow(t)
	img, err := w.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())

	bg := color.RGBA{0x12, 0x13, 0x17, 255}
	assert.Equal(t, bg, img.RGBAAt(0, 0))
	assert.Equal(t, bg, img.RGBAAt(399, 299))
	drawn := countPixels(img, func(c color.RGBA) bool { return !imagex.CompareColors(c, bg, 10) })
	assert.Greater(t, drawn, 500)
	assert.Greater(t, countPixels(img, reddish), 5)
	imagex.Assert(t, img, "temperature")
}

func TestRenderData(t *testing.T) {
	w := newTestWindow(t)
	sr := w.Main().Series[0]
	full, err := w.Render()
	require.NoError(t, err)

	sr.SetData(sr.Data().Prefix(0))
	empty, err := w.Render()
	require.NoError(t, err)
	assert.NotEqual(t, full.Pix, empty.Pix)
	// only the legend marker is left
	assert.Less(t, countPixels(empty, reddish), countPixels(full, reddish))
}

func TestRenderIdempotent(t *testing.T) {
	w := newTestWindow(t)
	a, err := w.Render()
	require.NoError(t, err)

	sr := w.Main().Series[0]
	assert.False(t, sr.SetData(sr.Data().Clone()))
	b, err := w.Render()
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestExportRoundTrip(t *testing.T) {
	w := newTestWindow(t)
	fn := filepath.Join(t.TempDir(), "name.png")
	require.NoError(t, w.Export(fn))

	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestMultiPanel(t *testing.T) {
	w, err := NewWindow(640, 480)
	require.NoError(t, err)
	w.SetGrid(2, 1)
	rows, cols := w.Grid()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
	assert.Nil(t, w.Panel(2, 0))
	assert.Len(t, w.Panels(), 2)

	xs := samples.Linspace(-6, 6, 100)
	top := w.Panel(0, 0)
	top.Plot("", samples.Sequence{})
	bottom := w.Panel(1, 0)
	bottom.Plot("cos(x)", samples.Func(xs, func(x float64) float64 { return x * x }))
	bottom.AddLegend(-10, 10)
	bottom.HideAxes = true

	img, err := w.Render()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 480), img.Bounds())
}

func TestAutoRange(t *testing.T) {
	pn := NewPanel()
	pn.AutoRange(samples.Sequence{}, 0, 0.1)
	assert.False(t, pn.XRange.Set)

	pn.AutoRange(temperature(t), 0, 0.1)
	assert.Equal(t, 1.0, pn.XRange.Padded().Min)
	assert.Equal(t, 10.0, pn.XRange.Padded().Max)
	yr := pn.YRange.Padded()
	assert.InDelta(t, 29-1.6, yr.Min, 1e-9)
	assert.InDelta(t, 45+1.6, yr.Max, 1e-9)
}

func TestLabelUnits(t *testing.T) {
	lb := Label{Text: "Hour", Units: "H"}
	assert.Equal(t, "Hour (H)", lb.String())
	lb.Units = ""
	assert.Equal(t, "Hour", lb.String())
}
