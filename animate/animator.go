// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate provides a fixed-interval animator that mutates
// series data on each tick, with sliding-window, scrolling and
// growing-reveal update policies.
package animate

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the redraw interval of the live lessons.
const DefaultInterval = 50 * time.Millisecond

// Policy is an update policy run once per tick.
// Step must not block; it should do work proportional to its output.
type Policy interface {
	Step()
}

// PolicyFunc adapts a function to [Policy].
type PolicyFunc func()

func (f PolicyFunc) Step() { f() }

// Animator invokes a [Policy] repeatedly at a fixed interval.
// Ticks never overlap: [Animator.Advance] is called from the host's
// single paint loop and [Animator.Run] holds a lock around each tick.
type Animator struct {

	// Interval between ticks.
	Interval time.Duration

	// Policy is run on every tick.
	Policy Policy

	// OnTick, if set, is called after the policy on every tick,
	// typically to request a redraw.
	OnTick func()

	elapsed time.Duration
	ticks   int
}

// New returns a new Animator. A non-positive interval uses [DefaultInterval].
func New(interval time.Duration, policy Policy) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{Interval: interval, Policy: policy}
}

// Tick runs one update.
func (an *Animator) Tick() {
	an.ticks++
	if an.Policy != nil {
		an.Policy.Step()
	}
	if an.OnTick != nil {
		an.OnTick()
	}
}

// Ticks returns the number of ticks run so far.
func (an *Animator) Ticks() int {
	return an.ticks
}

// Advance adds delta to the time elapsed since the last tick and runs
// one tick if a full interval has passed, returning whether it did.
// Missed intervals are dropped rather than replayed.
func (an *Animator) Advance(delta time.Duration) bool {
	an.elapsed += delta
	if an.elapsed < an.Interval {
		return false
	}
	an.elapsed %= an.Interval
	an.Tick()
	return true
}

// Run ticks on a [time.Ticker] until ctx is done, holding lock
// (if non-nil) around each tick. It blocks, so it is typically run
// in its own goroutine.
func (an *Animator) Run(ctx context.Context, lock sync.Locker) {
	tk := time.NewTicker(an.Interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tk.C:
			if lock != nil {
				lock.Lock()
			}
			an.Tick()
			if lock != nil {
				lock.Unlock()
			}
		}
	}
}
