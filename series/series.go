// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides a named line trace: a sample sequence drawn
// with a pen and optional markers.
package series

//go:generate core generate

import (
	"cogentcore.org/plotlessons/samples"
)

// Series is one named line / marker trace drawn on a plot panel.
// It is mutated in place by an animator and re-rendered each tick.
type Series struct {

	// Name is shown in the legend. Unnamed series are left out of it.
	Name string

	// Style is the pen and marker.
	Style Style

	data     samples.Sequence
	revision int
}

// New returns a new Series for the given data with the default style,
// then runs the given styling functions on it.
func New(name string, data samples.Sequence, stylers ...func(s *Style)) *Series {
	var st Stylers
	for _, f := range stylers {
		st.Add(f)
	}
	return &Series{Name: name, Style: *st.NewStyle(), data: data}
}

// Styler runs the given styling function on the series style.
func (sr *Series) Styler(f func(s *Style)) *Series {
	f(&sr.Style)
	return sr
}

// Data returns the current sample sequence.
func (sr *Series) Data() samples.Sequence {
	return sr.data
}

// Len returns the number of samples currently displayed.
func (sr *Series) Len() int {
	return sr.data.Len()
}

// SetData replaces the displayed samples. It returns false, leaving
// the revision unchanged, if the new data equal the current data.
func (sr *Series) SetData(data samples.Sequence) bool {
	if sr.data.Equal(data) {
		return false
	}
	sr.data = data
	sr.revision++
	return true
}

// Revision counts the data changes since creation.
func (sr *Series) Revision() int {
	return sr.revision
}
