// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samples provides the (x, y) sample sequences that are drawn
// as lines, along with the generators that produce them: static data,
// sampled closed-form functions, random streams, and the Lorenz system.
package samples

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32/minmax"
)

// Sequence is an ordered pair of equal-length numeric sequences.
// The zero value is an empty sequence.
type Sequence struct {
	X []float64
	Y []float64
}

// New returns a new Sequence holding copies of the given values.
// It returns an error if the lengths differ.
func New(x, y []float64) (Sequence, error) {
	if len(x) != len(y) {
		return Sequence{}, fmt.Errorf("samples.New: x has %d values but y has %d", len(x), len(y))
	}
	return Sequence{X: slices.Clone(x), Y: slices.Clone(y)}, nil
}

// FromInts is a convenience for literal integer data.
func FromInts(x, y []int) (Sequence, error) {
	return New(toFloats(x), toFloats(y))
}

func toFloats(v []int) []float64 {
	f := make([]float64, len(v))
	for i, iv := range v {
		f[i] = float64(iv)
	}
	return f
}

// Len returns the number of samples.
func (sq Sequence) Len() int {
	return len(sq.X)
}

// Last returns the final sample. ok is false for an empty sequence.
func (sq Sequence) Last() (x, y float64, ok bool) {
	n := sq.Len()
	if n == 0 {
		return 0, 0, false
	}
	return sq.X[n-1], sq.Y[n-1], true
}

// Prefix returns the first n samples, with n clamped to [0, Len].
// The returned sequence shares storage with sq.
func (sq Sequence) Prefix(n int) Sequence {
	n = max(0, min(n, sq.Len()))
	return Sequence{X: sq.X[:n:n], Y: sq.Y[:n:n]}
}

// Slide drops the oldest sample and appends (x, y), keeping the
// length constant. An empty sequence grows to one sample.
func (sq Sequence) Slide(x, y float64) Sequence {
	if sq.Len() == 0 {
		return Sequence{X: []float64{x}, Y: []float64{y}}
	}
	nx := append(slices.Clone(sq.X[1:]), x)
	ny := append(slices.Clone(sq.Y[1:]), y)
	return Sequence{X: nx, Y: ny}
}

// Clone returns a deep copy.
func (sq Sequence) Clone() Sequence {
	return Sequence{X: slices.Clone(sq.X), Y: slices.Clone(sq.Y)}
}

// Equal reports whether both sequences hold the same samples.
func (sq Sequence) Equal(o Sequence) bool {
	return slices.Equal(sq.X, o.X) && slices.Equal(sq.Y, o.Y)
}

// Range returns the data range along X and Y.
// Both ranges are invalid (Min > Max) for an empty sequence.
func (sq Sequence) Range() (xr, yr minmax.F64) {
	xr.SetInfinity()
	yr.SetInfinity()
	for i := range sq.X {
		xr.FitValInRange(sq.X[i])
		yr.FitValInRange(sq.Y[i])
	}
	return
}
