// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotlessons opens one of the line chart lessons in a window.
package main

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/plotlessons/lessons"
	"cogentcore.org/plotlessons/plotwin"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the plotlessons cli.
type Config struct {

	// Lesson is the name of the lesson to run.
	Lesson string `posarg:"0" required:"-" default:"basic"`

	// Export is an image file to write the chart to after the initial draw.
	// Lessons that export by themselves use their own file name if this is unset.
	Export string `flag:"e,export"`

	// Headless renders the chart without opening a window,
	// which is useful together with Export.
	Headless bool

	// Frames is the number of animation ticks to run before exporting
	// or rendering headless. It is ignored when only opening a window.
	Frames int

	// Seed seeds the random lessons; zero uses a random seed.
	Seed int64

	// Interval is the animation interval in milliseconds.
	Interval int `default:"50"`

	// Ticker drives the animation from a separate ticker goroutine
	// instead of the window paint loop.
	Ticker bool

	// List prints the available lessons and exits.
	List bool `flag:"l,list"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("plotlessons", "Line chart lessons: static plots, styling, live updates, multi-panel layouts and the Lorenz attractor.")
	cli.Run(opts, &Config{}, Run)
}

// Run builds the configured lesson, exports it if requested,
// and shows it unless headless.
func Run(c *Config) error { //cli:cmd -root
	if c.List {
		for _, ls := range lessons.All {
			name := termenv.String(fmt.Sprintf("%-10s", ls.Name)).Bold()
			fmt.Println(name, ls.Doc)
		}
		return nil
	}
	sc, export, err := prepare(c)
	if err != nil {
		return err
	}
	if export != "" {
		if err := sc.Window.Export(export); err != nil {
			return err
		}
	}
	if c.Headless {
		return nil
	}
	plotwin.Show(sc.Window, sc.Animator, c.Ticker)
	return nil
}

// prepare builds the configured lesson and returns it with the
// export file in effect. The animator is advanced by Frames ticks
// only when the chart is exported or rendered headless.
func prepare(c *Config) (*lessons.Scene, string, error) {
	ls, err := lessons.Find(c.Lesson)
	if err != nil {
		return nil, "", err
	}
	sc, err := ls.Build(&lessons.Config{Interval: time.Duration(c.Interval) * time.Millisecond, Seed: c.Seed})
	if err != nil {
		return nil, "", fmt.Errorf("building lesson %q: %w", ls.Name, err)
	}
	slog.Info("starting lesson", "lesson", ls.Name)

	export := c.Export
	if export == "" {
		export = sc.Export
	}
	if sc.Animator != nil && (c.Headless || export != "") {
		for range c.Frames {
			sc.Animator.Tick()
		}
	}
	return sc, export, nil
}
