// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotwin shows a [chart.Window] in a Cogent Core window,
// driving its optional [animate.Animator] from the paint loop.
package plotwin

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/plotlessons/animate"
	"cogentcore.org/plotlessons/chart"
)

// View displays a rendered chart window as a fixed-size image widget.
type View struct {

	// Image is the widget holding the rendered chart.
	Image *core.Image

	// Window is the chart being shown.
	Window *chart.Window

	// Animator, if non-nil, updates the chart data.
	Animator *animate.Animator

	// Frames counts the renders done by the view.
	Frames int
}

// NewView adds a new View of the given chart to parent and draws it once.
func NewView(parent tree.Node, w *chart.Window, an *animate.Animator) *View {
	vw := &View{Window: w, Animator: an}
	vw.Image = core.NewImage(parent)
	sz := w.Size
	vw.Image.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dot(float32(sz.X)), units.Dot(float32(sz.Y)))
		s.Max = s.Min
		s.Grow.Set(0, 0)
	})
	errors.Log(vw.Redraw())
	return vw
}

// Redraw renders the chart and hands the pixels to the image widget.
func (vw *View) Redraw() error {
	img, err := vw.Window.Render()
	if err != nil {
		return err
	}
	vw.Image.SetImage(img)
	vw.Image.NeedsRender()
	vw.Frames++
	return nil
}

// Animate ticks the animator from the widget paint loop, redrawing
// after every tick. It does nothing for a static chart.
func (vw *View) Animate() {
	if vw.Animator == nil {
		return
	}
	vw.Image.Animate(func(a *core.Animation) {
		if vw.Animator.Advance(time.Duration(a.Dt * float32(time.Millisecond))) {
			errors.Log(vw.Redraw())
		}
	})
}

// RunTicker drives the animator from its own ticker instead of the
// paint loop, holding the widget async lock around each tick.
func (vw *View) RunTicker(ctx context.Context) {
	if vw.Animator == nil {
		return
	}
	vw.Animator.OnTick = func() { errors.Log(vw.Redraw()) }
	vw.Animator.Run(ctx, locker{vw.Image})
}

type locker struct{ im *core.Image }

func (l locker) Lock()   { l.im.AsyncLock() }
func (l locker) Unlock() { l.im.AsyncUnlock() }

// Show opens the chart in the main window and blocks until it is closed.
// Animation runs from the paint loop, or from a ticker if useTicker is set.
func Show(w *chart.Window, an *animate.Animator, useTicker bool) {
	title := w.Title
	if title == "" {
		title = w.Main().Title.Text
	}
	if title == "" {
		title = "Plot"
	}
	b := core.NewBody(title)
	vw := NewView(b, w, an)
	if useTicker {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		b.OnShow(func(e events.Event) {
			go vw.RunTicker(ctx)
		})
	} else {
		vw.Animate()
	}
	slog.Info("showing chart", "title", title, "size", w.Size, "animated", an != nil)
	b.RunMainWindow()
}
