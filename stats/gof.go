// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GoodnessOfFit summarizes how well a fitted probability vector
// matches an observed one. Every field is NaN if the fitted vector
// contains NaN.
type GoodnessOfFit struct {
	// ChiSquare is Pearson's chi-square statistic computed on
	// probabilities. Smaller is better.
	ChiSquare float64

	// RSquared is the coefficient of determination of the fit.
	// 1 is a perfect fit.
	RSquared float64

	// RMSE is the root mean square error between the two
	// vectors.
	RMSE float64

	// KS is the Kolmogorov-Smirnov statistic, the largest
	// vertical distance between the two cumulative distributions.
	KS float64
}

// Score computes all goodness-of-fit metrics of expected against
// observed.
func Score(observed, expected []float64) GoodnessOfFit {
	return GoodnessOfFit{
		ChiSquare: ChiSquare(observed, expected),
		RSquared:  RSquared(observed, expected),
		RMSE:      RMSE(observed, expected),
		KS:        KS(observed, expected),
	}
}

func checkLen(observed, expected []float64) {
	if len(observed) != len(expected) {
		panic("len(observed) != len(expected)")
	}
}

// ChiSquare returns Σ (O_i - E_i)² / E_i.
//
// Terms where E_i is exactly 0 are left out of the sum instead of
// dividing by zero. NaN in either vector produces NaN.
func ChiSquare(observed, expected []float64) float64 {
	checkLen(observed, expected)
	chi := 0.0
	for i, o := range observed {
		e := expected[i]
		if e == 0 {
			continue
		}
		d := o - e
		chi += d * d / e
	}
	return chi
}

// sse returns the sum of squared differences of observed and
// expected.
func sse(observed, expected []float64) float64 {
	d := floats.Distance(observed, expected, 2)
	return d * d
}

// RSquared returns 1 - SSres/SStot where SSres is the residual sum
// of squares and SStot is the total sum of squares of observed.
//
// If observed is constant, SStot is 0 and R² is undefined. In that
// case RSquared returns 1 if expected matches observed exactly over
// more than one point, and NaN otherwise.
func RSquared(observed, expected []float64) float64 {
	checkLen(observed, expected)
	if len(observed) == 0 {
		return nan
	}
	res := 0.0
	for i, o := range observed {
		d := o - expected[i]
		res += d * d
	}
	mean := stat.Mean(observed, nil)
	tot := 0.0
	for _, o := range observed {
		tot += (o - mean) * (o - mean)
	}
	if tot == 0 {
		if res == 0 && len(observed) > 1 {
			return 1
		}
		return nan
	}
	return 1 - res/tot
}

// RMSE returns the root mean square error of expected against
// observed.
func RMSE(observed, expected []float64) float64 {
	checkLen(observed, expected)
	if len(observed) == 0 {
		return nan
	}
	return math.Sqrt(sse(observed, expected) / float64(len(observed)))
}

// KS returns the Kolmogorov-Smirnov statistic of observed and
// expected: max_i |F_O(i) - F_E(i)|, where F_O and F_E are the
// cumulative sums of observed and expected.
func KS(observed, expected []float64) float64 {
	checkLen(observed, expected)
	if len(observed) == 0 || floats.HasNaN(observed) || floats.HasNaN(expected) {
		return nan
	}
	fo := floats.CumSum(make([]float64, len(observed)), observed)
	fe := floats.CumSum(make([]float64, len(expected)), expected)
	floats.Sub(fo, fe)
	d := 0.0
	for _, x := range fo {
		d = math.Max(d, math.Abs(x))
	}
	return d
}
