// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"cogentcore.org/plotlessons/chart"
	"cogentcore.org/plotlessons/samples"
)

var (
	hours        = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	temperature1 = []int{30, 32, 34, 32, 33, 31, 29, 32, 35, 45}
	temperature2 = []int{50, 35, 44, 22, 38, 32, 27, 38, 32, 44}
)

// ExportFile is the image written by the [Export] lesson.
const ExportFile = "pyqtplot03.png"

// Basic plots the hourly temperature with the default pen
// on a plain 640x480 window.
func Basic(c *Config) (*Scene, error) {
	w, err := chart.NewWindow(640, 480)
	if err != nil {
		return nil, err
	}
	sq, err := samples.FromInts(hours, temperature1)
	if err != nil {
		return nil, err
	}
	w.Main().Plot("", sq)
	return &Scene{Window: w}, nil
}

// Export styles the background and pen on a 400x300 window
// and exports the chart to [ExportFile].
func Export(c *Config) (*Scene, error) {
	w, err := chart.NewWindow(400, 300)
	if err != nil {
		return nil, err
	}
	if err := w.SetBackground(background); err != nil {
		return nil, err
	}
	sq, err := samples.FromInts(hours, temperature1)
	if err != nil {
		return nil, err
	}
	w.Main().Plot("", sq, pen("#dcdcdc", 1))
	return &Scene{Window: w, Export: ExportFile}, nil
}

// Markers adds a bold title and red '+' markers.
func Markers(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	sq, err := samples.FromInts(hours, temperature1)
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	pn.SetTitle("Temperature Plot", titleStyle)
	pn.Plot("", sq, pen("#dcdcdc", 1), plus("r"))
	return &Scene{Window: w}, nil
}

// temperaturePanel decorates a panel with the temperature labels and grid.
func temperaturePanel(pn *chart.Panel) {
	pn.SetTitle("Temperature Plot", titleStyle)
	pn.SetLabel("left", "Temperature", "°C", labelStyle)
	pn.SetLabel("bottom", "Hour", "H", labelStyle)
	pn.ShowGrid(true, true, 0.3)
}

// Decorated adds axis labels with units, a legend, a grid
// and fixed padded axis ranges.
func Decorated(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	sq, err := samples.FromInts(hours, temperature1)
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	temperaturePanel(pn)
	pn.AddLegend(30, 30)
	pn.SetXRange(1, 10, 0.1)
	pn.SetYRange(29, 45, 0.1)
	pn.Plot("Sensor 1", sq, pen("#dcdcdc", 1), plus("r"))
	return &Scene{Window: w}, nil
}

// Sensors plots two named sensors, each with its own line and marker colors.
func Sensors(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	temperaturePanel(pn)
	pn.AddLegend(-10, 10)
	pn.SetXRange(1, 10, 0.1)
	pn.SetYRange(22, 50, 0.1)

	sensors := []struct {
		name, line, brush string
		temps             []int
	}{
		{"Sensor 1", "#d81b60", "#004d40", temperature1},
		{"Sensor 2", "#1e88e5", "#ffc107", temperature2},
	}
	for _, sn := range sensors {
		sq, err := samples.FromInts(hours, sn.temps)
		if err != nil {
			return nil, err
		}
		pn.Plot(sn.name, sq, pen(sn.line, 1), plus(sn.brush))
	}
	return &Scene{Window: w}, nil
}
