// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"cogentcore.org/plotlessons/chart"
	"cogentcore.org/plotlessons/samples"
	"cogentcore.org/plotlessons/series"
)

var (
	_ Policy = (*SlidingWindow)(nil)
	_ Policy = (*Scroll)(nil)
	_ Policy = (*Reveal)(nil)
)

// SlidingWindow drops the oldest sample of a series and appends one
// newly generated sample per step, keeping the length constant.
type SlidingWindow struct {
	Series *series.Series

	// Next generates the sample to append.
	Next func() (x, y float64)
}

func (sw *SlidingWindow) Step() {
	x, y := sw.Next()
	sw.Series.SetData(sw.Series.Data().Slide(x, y))
}

// Scroll recomputes a trailing window of a function each step: the
// window starts at the second current x and ends Delta past the last,
// resampled at the same number of points. If Panel is set its ranges
// follow the data.
type Scroll struct {
	Series *series.Series
	Func   func(x float64) float64

	// Delta is the distance the window end advances per tick.
	Delta float64

	Panel      *chart.Panel
	XPad, YPad float64
}

func (sc *Scroll) Step() {
	d := sc.Series.Data()
	n := d.Len()
	if n < 2 {
		return
	}
	xs := samples.Linspace(d.X[1], d.X[n-1]+sc.Delta, n)
	nd := samples.Func(xs, sc.Func)
	sc.Series.SetData(nd)
	if sc.Panel != nil {
		sc.Panel.AutoRange(nd, sc.XPad, sc.YPad)
	}
}

// RevealTarget pairs a series with the full precomputed data it reveals.
type RevealTarget struct {
	Series *series.Series
	Full   samples.Sequence
}

// Reveal shows a growing prefix of precomputed sequences: after k steps
// every target displays min(k, len(full)) samples.
type Reveal struct {
	Targets []RevealTarget

	cursor int
}

// NewReveal returns a Reveal starting with nothing displayed.
func NewReveal(targets ...RevealTarget) *Reveal {
	rv := &Reveal{Targets: targets}
	rv.apply()
	return rv
}

// Add adds a target, displaying its current prefix.
func (rv *Reveal) Add(sr *series.Series, full samples.Sequence) {
	rv.Targets = append(rv.Targets, RevealTarget{Series: sr, Full: full})
	sr.SetData(full.Prefix(rv.cursor))
}

func (rv *Reveal) Step() {
	if rv.Done() {
		return
	}
	rv.cursor++
	rv.apply()
}

// Cursor returns the current prefix length.
func (rv *Reveal) Cursor() int {
	return rv.cursor
}

// Done reports whether every target is fully revealed.
func (rv *Reveal) Done() bool {
	for _, tg := range rv.Targets {
		if rv.cursor < tg.Full.Len() {
			return false
		}
	}
	return true
}

func (rv *Reveal) apply() {
	for _, tg := range rv.Targets {
		tg.Series.SetData(tg.Full.Prefix(rv.cursor))
	}
}
