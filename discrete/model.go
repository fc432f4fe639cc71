// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discrete implements discrete probability models over a
// finite, contiguous integer domain.
//
// A domain of size n is addressed by zero-based offsets k in [0, n).
// The caller maps offsets back to the values it observed.
package discrete // import "github.com/go-distfit/distfit/discrete"

import "math"

var nan = math.NaN()

// A Model is a family of discrete distributions over a domain of n
// values, indexed by a fixed number of real parameters.
type Model interface {
	// Name returns a short, stable identifier for this model,
	// such as "beta_binomial".
	Name() string

	// Label returns a human-readable name for this model.
	Label() string

	// ParamNames returns the names of this model's parameters,
	// in the order PMF expects them. It is empty for models
	// with no free parameters.
	ParamNames() []string

	// PMF returns the probability of offset k in a domain of n
	// values under the given parameters. It returns 0 for k
	// outside [0, n) and NaN if params are invalid.
	PMF(k, n int, params []float64) float64

	// InitialGuess returns the starting point for fitting this
	// model's parameters.
	InitialGuess() []float64

	// Bounds returns the lower and upper bounds of each
	// parameter. Unbounded sides are ±Inf.
	Bounds() (lo, hi []float64)
}

// Eval returns m.PMF(k, n, params) for each k in [0, n).
func Eval(m Model, n int, params []float64) []float64 {
	ps := make([]float64, n)
	for k := range ps {
		ps[k] = m.PMF(k, n, params)
	}
	return ps
}

// Default returns the models fit by default, in reporting order.
func Default() []Model {
	return []Model{Uniform{}, BetaBinomial{}, Zipf{}}
}

func validParams(params []float64, n int) bool {
	if len(params) != n {
		return false
	}
	for _, p := range params {
		if math.IsNaN(p) {
			return false
		}
	}
	return true
}
