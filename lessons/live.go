// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lessons

import (
	"math"

	"cogentcore.org/plotlessons/animate"
	"cogentcore.org/plotlessons/chart"
	"cogentcore.org/plotlessons/samples"
)

const (
	// sinePoints is the number of samples over [-2pi, 2pi].
	sinePoints = 1000

	// lorenzSteps is the length of the Lorenz trajectory.
	lorenzSteps = 5000
)

// wavePanel decorates a panel for plotting a wave.
func wavePanel(pn *chart.Panel, title, ylabel, xlabel string) {
	if title != "" {
		pn.SetTitle(title, titleStyle)
	}
	pn.SetLabel("left", ylabel, "", labelStyle)
	pn.SetLabel("bottom", xlabel, "", labelStyle)
	pn.ShowGrid(true, true, 0.5)
}

// Random slides a 100 sample window of random values in [0, 100],
// appending a new value every tick.
func Random(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	wavePanel(pn, "Updating Plot", "y-value", "x-value")
	pn.AddLegend(30, 30)

	r := c.Rand()
	xs := samples.Range(100)
	sq, err := samples.New(xs, samples.RandomInts(r, len(xs), 0, 100))
	if err != nil {
		return nil, err
	}
	sr := pn.Plot("", sq, pen("#77ab56", 1))
	rs := samples.NewRandomStream(r, xs[len(xs)-1], 0, 100)
	an := animate.New(c.interval(), &animate.SlidingWindow{Series: sr, Next: rs.Next})
	return &Scene{Window: w, Animator: an}, nil
}

// Scroll moves a sine wave along x by one sample spacing per tick,
// re-ranging both axes to the visible window.
func Scroll(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	wavePanel(pn, "Sine wave", "sin(x)", "x")

	xs, step := samples.LinspaceStep(-2*math.Pi, 2*math.Pi, sinePoints)
	sq := samples.Func(xs, math.Sin)
	pn.AutoRange(sq, 0, 0.1)
	sr := pn.Plot("", sq, pen("#77ab56", 1))
	an := animate.New(c.interval(), &animate.Scroll{Series: sr, Func: math.Sin, Delta: step, Panel: pn, YPad: 0.1})
	return &Scene{Window: w, Animator: an}, nil
}

// Reveal draws a precomputed sine wave one more point per tick.
func Reveal(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	wavePanel(pn, "Sine wave", "sin(x)", "x")

	full := samples.Func(samples.Linspace(-2*math.Pi, 2*math.Pi, sinePoints), math.Sin)
	pn.AutoRange(full, 0, 0.1)
	sr := pn.Plot("", samples.Sequence{}, pen("#77ab56", 1))
	rv := animate.NewReveal(animate.RevealTarget{Series: sr, Full: full})
	return &Scene{Window: w, Animator: animate.New(c.interval(), rv)}, nil
}

// SinCos reveals sine and cosine together on one panel with a legend.
func SinCos(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	pn := w.Main()
	wavePanel(pn, "Sine and Cosine", "f(x)", "x")
	pn.AddLegend(-10, 10)

	xs := samples.Linspace(-2*math.Pi, 2*math.Pi, sinePoints)
	sin, cos := samples.Func(xs, math.Sin), samples.Func(xs, math.Cos)
	pn.AutoRange(sin, 0, 0.1)

	rv := animate.NewReveal()
	rv.Add(pn.Plot("sin(x)", samples.Sequence{}, pen("#fa8775", 1)), sin)
	rv.Add(pn.Plot("cos(x)", samples.Sequence{}, pen("#3574e2", 1)), cos)
	return &Scene{Window: w, Animator: animate.New(c.interval(), rv)}, nil
}

// Panels reveals sine and cosine in two vertically stacked panels.
func Panels(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	w.SetGrid(2, 1)

	xs := samples.Linspace(-2*math.Pi, 2*math.Pi, sinePoints)
	waves := []struct {
		name, color, xlabel string
		f                   func(float64) float64
	}{
		{"sin(x)", "#fa8775", " ", math.Sin},
		{"cos(x)", "#3574e2", "x", math.Cos},
	}
	rv := animate.NewReveal()
	for i, wv := range waves {
		pn := w.Panel(i, 0)
		wavePanel(pn, "", wv.name, wv.xlabel)
		pn.AddLegend(-10, 10)
		pn.Legend.TextSize = 9
		full := samples.Func(xs, wv.f)
		pn.AutoRange(full, 0, 0.1)
		rv.Add(pn.Plot(wv.name, samples.Sequence{}, pen(wv.color, 1)), full)
	}
	return &Scene{Window: w, Animator: animate.New(c.interval(), rv)}, nil
}

// Lorenz reveals the Lorenz attractor in three side-by-side projections
// (z against x, z against y, x against y) with the axes hidden.
func Lorenz(c *Config) (*Scene, error) {
	w, err := newWindow()
	if err != nil {
		return nil, err
	}
	w.Title = "Lorenz attractor"
	w.SetGrid(1, 3)

	tr := samples.NewLorenz().Integrate(lorenzSteps)
	rv := animate.NewReveal()
	for i, full := range []samples.Sequence{tr.XZ(), tr.YZ(), tr.YX()} {
		pn := w.Panel(0, i)
		pn.HideAxes = true
		rv.Add(pn.Plot("", samples.Sequence{}, pen("#dcdcdc", 1)), full)
	}
	return &Scene{Window: w, Animator: animate.New(c.interval(), rv)}, nil
}
