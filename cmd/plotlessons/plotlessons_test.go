// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadlessExport(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "lorenz.png")
	err := Run(&Config{Lesson: "lorenz", Export: fn, Headless: true, Frames: 100, Interval: 50})
	require.NoError(t, err)

	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestRunUnknown(t *testing.T) {
	err := Run(&Config{Lesson: "nope", Headless: true})
	assert.Error(t, err)
}

func TestPrepareFrames(t *testing.T) {
	sc, export, err := prepare(&Config{Lesson: "reveal", Frames: 25, Interval: 50})
	require.NoError(t, err)
	assert.Empty(t, export)
	assert.Equal(t, 0, sc.Animator.Ticks())
	assert.Equal(t, 0, sc.Window.Main().Series[0].Len())

	sc, _, err = prepare(&Config{Lesson: "reveal", Headless: true, Frames: 25, Interval: 50})
	require.NoError(t, err)
	assert.Equal(t, 25, sc.Animator.Ticks())
	assert.Equal(t, 25, sc.Window.Main().Series[0].Len())

	_, export, err = prepare(&Config{Lesson: "export", Interval: 50})
	require.NoError(t, err)
	assert.Equal(t, "pyqtplot03.png", export)
}

func TestRunList(t *testing.T) {
	assert.NoError(t, Run(&Config{List: true}))
}
