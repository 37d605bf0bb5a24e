// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"image/color"
	"testing"

	"cogentcore.org/plotlessons/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetData(t *testing.T) {
	sq, err := samples.FromInts([]int{1, 2, 3}, []int{4, 5, 6})
	require.NoError(t, err)
	sr := New("Sensor 1", sq)
	assert.Equal(t, 0, sr.Revision())

	assert.False(t, sr.SetData(sq.Clone()))
	assert.Equal(t, 0, sr.Revision())

	assert.True(t, sr.SetData(sq.Slide(4, 7)))
	assert.Equal(t, 1, sr.Revision())
	assert.Equal(t, 3, sr.Len())
	_, y, ok := sr.Data().Last()
	assert.True(t, ok)
	assert.Equal(t, 7.0, y)
}

func TestStylers(t *testing.T) {
	sr := New("s", samples.Sequence{}, func(s *Style) {
		s.Line.Color = MustColor("#d81b60")
		s.Point.On = true
		s.Point.Shape = Plus
	})
	assert.Equal(t, color.RGBA{0xd8, 0x1b, 0x60, 255}, sr.Style.Line.Color)
	assert.True(t, sr.Style.Point.On)
	assert.Equal(t, Plus, sr.Style.Point.Shape)
	assert.Equal(t, 1.0, sr.Style.Line.Width)

	sr.Styler(func(s *Style) { s.Line.Pattern = NoLine })
	assert.False(t, sr.Style.Line.IsOn())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#121317")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x12, 0x13, 0x17, 255}, c)

	c, err = ParseColor("r")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)

	n := WithAlpha(color.RGBA{255, 255, 255, 255}, 0.5)
	assert.Equal(t, uint8(128), n.A)
}

func TestDashes(t *testing.T) {
	assert.Nil(t, Solid.Dashes(1))
	assert.Equal(t, []float64{8, 4}, Dash.Dashes(2))
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "DashDot", DashDot.String())
	assert.Equal(t, "Plus", Plus.String())
	assert.Len(t, PatternsValues(), int(PatternsN))
	assert.Len(t, ShapesValues(), int(ShapesN))

	var sh Shapes
	require.NoError(t, sh.SetString("Cross"))
	assert.Equal(t, Cross, sh)
	assert.Error(t, sh.SetString("Hexagon"))
}

func TestStylersOrder(t *testing.T) {
	var st Stylers
	st.Add(func(s *Style) { s.Line.Width = 3 })
	st.Add(func(s *Style) { s.Line.Width *= 2 })
	s := st.NewStyle()
	assert.Equal(t, 6.0, s.Line.Width)
	assert.Equal(t, Circle, s.Point.Shape)
	assert.Equal(t, *NewStyle(), New("", samples.Sequence{}).Style)
}
