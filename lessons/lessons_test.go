// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic(t *testing.T) {
	sc, err := Basic(nil)
	require.NoError(t, err)
	assert.Nil(t, sc.Animator)
	assert.Equal(t, image.Pt(640, 480), sc.Window.Size)

	srs := sc.Window.Main().Series
	require.Len(t, srs, 1)
	d := srs[0].Data()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, d.X)
	assert.Equal(t, []float64{30, 32, 34, 32, 33, 31, 29, 32, 35, 45}, d.Y)

	img, err := sc.Window.Render()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Greater(t, drawnPixels(img), 500)
	imagex.Assert(t, img, "basic")
	// static lessons never change
	assert.Equal(t, 0, srs[0].Revision())
}

func TestAllLessonsBuild(t *testing.T) {
	for _, ls := range All {
		t.Run(ls.Name, func(t *testing.T) {
			sc, err := ls.Build(&Config{Seed: 7})
			require.NoError(t, err)
			if sc.Animator != nil {
				for range 20 {
					sc.Animator.Tick()
				}
			}
			img, err := sc.Window.Render()
			require.NoError(t, err)
			assert.Equal(t, image.Rectangle{Max: sc.Window.Size}, img.Bounds())
		})
	}
}

// drawnPixels returns the number of pixels that differ from the
// top left corner, which is always background.
func drawnPixels(img *image.RGBA) int {
	bg := img.RGBAAt(0, 0)
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !imagex.CompareColors(img.RGBAAt(x, y), bg, 10) {
				n++
			}
		}
	}
	return n
}

func TestFind(t *testing.T) {
	ls, err := Find("lorenz")
	require.NoError(t, err)
	assert.Equal(t, "lorenz", ls.Name)

	_, err = Find("nope")
	assert.ErrorContains(t, err, "basic")
	assert.Len(t, Names(), len(All))
}

func TestExportLesson(t *testing.T) {
	sc, err := Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "pyqtplot03.png", sc.Export)

	fn := filepath.Join(t.TempDir(), sc.Export)
	require.NoError(t, sc.Window.Export(fn))
	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 300), img.Bounds())
}

func TestRandomSeeded(t *testing.T) {
	a, err := Random(&Config{Seed: 3})
	require.NoError(t, err)
	b, err := Random(&Config{Seed: 3})
	require.NoError(t, err)
	for range 10 {
		a.Animator.Tick()
		b.Animator.Tick()
	}
	da, db := a.Window.Main().Series[0].Data(), b.Window.Main().Series[0].Data()
	assert.Equal(t, da, db)
	assert.Equal(t, 100, da.Len())
	assert.Equal(t, 10.0, da.X[0])
}

func TestLorenzReveal(t *testing.T) {
	sc, err := Lorenz(nil)
	require.NoError(t, err)
	assert.Equal(t, "Lorenz attractor", sc.Window.Title)
	panels := sc.Window.Panels()
	require.Len(t, panels, 3)
	for range 3 {
		sc.Animator.Tick()
	}
	for _, pn := range panels {
		assert.True(t, pn.HideAxes)
		assert.Equal(t, 3, pn.Series[0].Len())
	}
	// z against x
	d := panels[0].Series[0].Data()
	assert.InDelta(t, 1.026, d.X[2], 1e-12)
	assert.InDelta(t, 0.9697111111111111, d.Y[2], 1e-12)
}

func TestScrollRanges(t *testing.T) {
	sc, err := Scroll(nil)
	require.NoError(t, err)
	pn := sc.Window.Main()
	x0 := pn.XRange.Min
	sc.Animator.Tick()
	assert.Greater(t, pn.XRange.Min, x0)
	assert.Equal(t, 1000, pn.Series[0].Len())
}
