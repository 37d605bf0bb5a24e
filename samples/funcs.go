// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Linspace returns n evenly spaced values over [lo, hi], inclusive of
// both ends. n < 2 returns just lo (or nothing for n <= 0).
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// LinspaceStep is [Linspace] that also returns the spacing between values.
func LinspaceStep(lo, hi float64, n int) ([]float64, float64) {
	xs := Linspace(lo, hi, n)
	if n < 2 {
		return xs, 0
	}
	return xs, (hi - lo) / float64(n-1)
}

// Apply returns f applied to each value of xs.
func Apply(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// Func samples f at each of xs.
func Func(xs []float64, f func(float64) float64) Sequence {
	return Sequence{X: xs, Y: Apply(xs, f)}
}

// Range returns the integers [0, n) as float values.
func Range(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// RandomInt returns a uniform integer value in [lo, hi] inclusive,
// drawn from src, or the global source if src is nil.
func RandomInt(src rand.Source, lo, hi int) float64 {
	u := distuv.Uniform{Min: float64(lo), Max: float64(hi + 1), Src: src}
	return min(math.Floor(u.Rand()), float64(hi))
}

// RandomInts returns n uniform integer values in [lo, hi].
func RandomInts(src rand.Source, n, lo, hi int) []float64 {
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = RandomInt(src, lo, hi)
	}
	return ys
}

// RandomStream generates successive samples whose x advances by one
// from the last x and whose y is uniform in [Lo, Hi].
type RandomStream struct {
	Src  rand.Source
	Lo   int
	Hi   int

	lastX float64
}

// NewRandomStream returns a stream that continues after lastX.
func NewRandomStream(src rand.Source, lastX float64, lo, hi int) *RandomStream {
	return &RandomStream{Src: src, Lo: lo, Hi: hi, lastX: lastX}
}

// Next returns the next sample.
func (rs *RandomStream) Next() (x, y float64) {
	rs.lastX++
	return rs.lastX, RandomInt(rs.Src, rs.Lo, rs.Hi)
}
