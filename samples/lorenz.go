// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

// Lorenz holds the parameters of the Lorenz system, integrated with
// fixed-step explicit Euler.
type Lorenz struct {
	Sigma float64
	Beta  float64
	Rho   float64

	// Dt is the integration time step.
	Dt float64
}

// NewLorenz returns the classic chaotic parameter set.
func NewLorenz() *Lorenz {
	return &Lorenz{Sigma: 10, Beta: 8.0 / 3.0, Rho: 28, Dt: 0.01}
}

// Trajectory is the integrated state of the system over time.
type Trajectory struct {
	X, Y, Z []float64
}

// Len returns the number of steps.
func (tr *Trajectory) Len() int {
	return len(tr.X)
}

// Integrate runs n-1 Euler steps starting from (1, 1, 1),
// returning n points. Each step uses only the previous state.
func (lz *Lorenz) Integrate(n int) *Trajectory {
	if n <= 0 {
		return &Trajectory{}
	}
	tr := &Trajectory{X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n)}
	tr.X[0], tr.Y[0], tr.Z[0] = 1, 1, 1
	dt := lz.Dt
	for i := 0; i < n-1; i++ {
		x, y, z := tr.X[i], tr.Y[i], tr.Z[i]
		tr.X[i+1] = dt*(lz.Sigma*(y-x)) + x
		tr.Y[i+1] = dt*(x*(lz.Rho-z)-y) + y
		tr.Z[i+1] = dt*(x*y-lz.Beta*z) + z
	}
	return tr
}

// XZ returns z plotted against x.
func (tr *Trajectory) XZ() Sequence { return Sequence{X: tr.X, Y: tr.Z} }

// YZ returns z plotted against y.
func (tr *Trajectory) YZ() Sequence { return Sequence{X: tr.Y, Y: tr.Z} }

// YX returns x plotted against y.
func (tr *Trajectory) YX() Sequence { return Sequence{X: tr.Y, Y: tr.X} }
