// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discrete

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Zipf is the Zipfian model with exponent c. The value at offset k
// has rank k+1 and probability (k+1)^-c / ζ(c), where ζ is the
// Riemann zeta function.
//
// The zeta series only converges for c > 1; for c <= 1 PMF returns
// NaN. c is otherwise unbounded. Because the normalizing constant
// sums over all ranks rather than just the domain, the probabilities
// over a finite domain sum to less than 1.
type Zipf struct{}

func (Zipf) Name() string { return "zipf" }

func (Zipf) Label() string { return "Zipfian" }

func (Zipf) ParamNames() []string { return []string{"c"} }

func (Zipf) PMF(k, n int, params []float64) float64 {
	if !validParams(params, 1) {
		return nan
	}
	c := params[0]
	if !(c > 1) || math.IsInf(c, 1) {
		return nan
	}
	if k < 0 || k >= n {
		return 0
	}
	rank := float64(k + 1)
	return math.Pow(rank, -c) / mathext.Zeta(c, 1)
}

func (Zipf) InitialGuess() []float64 { return []float64{1.1} }

func (Zipf) Bounds() (lo, hi []float64) {
	return []float64{math.Inf(-1)}, []float64{math.Inf(1)}
}
