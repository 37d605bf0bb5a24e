// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lessons provides the line chart lessons, each adding one
// feature: basic plotting, pen styling and export, titles and markers,
// axis decorations, multiple series, live updates, multi-panel layouts,
// and the Lorenz attractor.
package lessons

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"cogentcore.org/plotlessons/animate"
	"cogentcore.org/plotlessons/chart"
	"cogentcore.org/plotlessons/series"
)

// Config holds the settings shared by all lessons.
// The zero value gives each lesson its own defaults.
type Config struct {

	// Interval overrides the animation interval of live lessons.
	Interval time.Duration

	// Seed seeds the random lessons; zero uses the global source.
	Seed int64
}

// Rand returns the random source selected by the config,
// or nil for the global source.
func (c *Config) Rand() rand.Source {
	if c == nil || c.Seed == 0 {
		return nil
	}
	return rand.NewPCG(uint64(c.Seed), 0)
}

func (c *Config) interval() time.Duration {
	if c == nil {
		return animate.DefaultInterval
	}
	return c.Interval
}

// Scene is a built lesson: its window plus the animator for live lessons.
type Scene struct {
	Window *chart.Window

	// Animator is nil for static lessons.
	Animator *animate.Animator

	// Export is the image file the lesson writes after the initial draw,
	// if any.
	Export string
}

// Lesson is a named, buildable lesson.
type Lesson struct {
	Name string
	Doc  string

	Build func(c *Config) (*Scene, error)
}

// All are the lessons in order.
var All = []*Lesson{
	{"basic", "Plot a static line with the default pen.", Basic},
	{"export", "Set the background and pen, and export the chart to a PNG file.", Export},
	{"markers", "Add a title and '+' markers.", Markers},
	{"decorated", "Add axis labels, a legend, a grid and fixed axis ranges.", Decorated},
	{"sensors", "Plot two named series with their own pens and markers.", Sensors},
	{"random", "Update a sliding window of random values every 50 ms.", Random},
	{"scroll", "Scroll a sine wave, re-ranging the axes every tick.", Scroll},
	{"reveal", "Reveal a precomputed sine wave point by point.", Reveal},
	{"sincos", "Reveal sine and cosine together with a legend.", SinCos},
	{"panels", "Reveal sine and cosine in two stacked panels.", Panels},
	{"lorenz", "Reveal the Lorenz attractor in three projections.", Lorenz},
}

// Names returns the names of all lessons.
func Names() []string {
	nms := make([]string, len(All))
	for i, ls := range All {
		nms[i] = ls.Name
	}
	return nms
}

// Find returns the lesson with the given name.
func Find(name string) (*Lesson, error) {
	i := slices.IndexFunc(All, func(ls *Lesson) bool { return ls.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("unknown lesson %q; available lessons are: %s", name, strings.Join(Names(), ", "))
	}
	return All[i], nil
}

// decoration colors
var (
	background = "#121317"
	textColor  = series.MustColor("#dcdcdc")
	titleStyle = chart.TextStyle{Color: textColor, Size: 10, Bold: true}
	labelStyle = chart.TextStyle{Color: textColor, Size: 10}
)

// newWindow returns a 640x480 window with the dark background.
func newWindow() (*chart.Window, error) {
	w, err := chart.NewWindow(640, 480)
	if err != nil {
		return nil, err
	}
	return w, w.SetBackground(background)
}

// pen returns a styler setting a solid line of the given color and width.
func pen(hex string, width float64) func(s *series.Style) {
	c := series.MustColor(hex)
	return func(s *series.Style) {
		s.Line.Color = c
		s.Line.Width = width
		s.Line.Pattern = series.Solid
	}
}

// plus returns a styler adding '+' markers of size 8 with the given brush.
func plus(hex string) func(s *series.Style) {
	c := series.MustColor(hex)
	return func(s *series.Style) {
		s.Point.On = true
		s.Point.Shape = series.Plus
		s.Point.Size = 8
		s.Point.Fill = c
	}
}
