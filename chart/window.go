// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart provides the Window and Panel model for line charts
// and rasterizes it with gonum/plot at a fixed pixel size.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/plotlessons/series"
)

// Window is a fixed-size drawable canvas holding a grid of panels.
// It is created once and lives for the life of the program.
type Window struct {

	// Title is the window title.
	Title string

	// Size is the fixed size in pixels.
	Size image.Point

	// Background fills the whole canvas.
	Background color.Color

	rows, cols int
	panels     [][]*Panel
}

// NewWindow returns a new Window of the given pixel size with one panel.
func NewWindow(width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("chart.NewWindow: invalid size %dx%d", width, height)
	}
	w := &Window{Size: image.Pt(width, height), Background: color.Black}
	w.SetGrid(1, 1)
	return w, nil
}

// SetBackground sets the background from a hex color string.
func (w *Window) SetBackground(hex string) error {
	c, err := series.ParseColor(hex)
	if err != nil {
		return err
	}
	w.Background = c
	return nil
}

// SetGrid sets the panel layout to rows x cols, keeping any existing
// panels that still fit. Empty cells get a new default panel.
func (w *Window) SetGrid(rows, cols int) {
	rows, cols = max(rows, 1), max(cols, 1)
	np := make([][]*Panel, rows)
	for r := range np {
		np[r] = make([]*Panel, cols)
		for c := range np[r] {
			if r < w.rows && c < w.cols {
				np[r][c] = w.panels[r][c]
			} else {
				np[r][c] = NewPanel()
			}
		}
	}
	w.rows, w.cols, w.panels = rows, cols, np
}

// Grid returns the panel layout dimensions.
func (w *Window) Grid() (rows, cols int) {
	return w.rows, w.cols
}

// Panel returns the panel at the given cell, or nil if out of range.
func (w *Window) Panel(row, col int) *Panel {
	if row < 0 || row >= w.rows || col < 0 || col >= w.cols {
		return nil
	}
	return w.panels[row][col]
}

// Main returns the first panel.
func (w *Window) Main() *Panel {
	return w.panels[0][0]
}

// Panels returns all panels in row-major order.
func (w *Window) Panels() []*Panel {
	var ps []*Panel
	for _, row := range w.panels {
		ps = append(ps, row...)
	}
	return ps
}

// Export renders the window and saves it to the given image file;
// the format follows the file extension.
func (w *Window) Export(filename string) error {
	img, err := w.Render()
	if err != nil {
		return err
	}
	if err := imagex.Save(img, filename); err != nil {
		return fmt.Errorf("chart.Export: %w", err)
	}
	slog.Info("exported chart", "file", filename, "size", w.Size)
	return nil
}
