// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discrete

// Uniform is the discrete uniform distribution: every value in the
// domain has probability 1/n. It has no free parameters.
type Uniform struct{}

func (Uniform) Name() string { return "uniform" }

func (Uniform) Label() string { return "Discrete Uniform" }

func (Uniform) ParamNames() []string { return nil }

func (Uniform) PMF(k, n int, params []float64) float64 {
	if k < 0 || k >= n {
		return 0
	}
	return 1 / float64(n)
}

func (Uniform) InitialGuess() []float64 { return nil }

func (Uniform) Bounds() (lo, hi []float64) { return nil, nil }
