// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discrete

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BetaBinomialDist is a beta-binomial distribution: the number of
// successes in N Bernoulli trials whose success probability is drawn
// from a Beta(Alpha, Beta) distribution.
type BetaBinomialDist struct {
	// N is the number of trials. N >= 0.
	N int

	// Alpha and Beta are the shape parameters of the beta
	// distribution. Both must be > 0.
	Alpha, Beta float64
}

// PMF is the probability of getting exactly int(k) successes.
//
//	P(k) = C(N, k) B(k+α, N-k+β) / B(α, β)
//
// It is computed in log space, so large N and shape parameters don't
// overflow.
func (d BetaBinomialDist) PMF(k float64) float64 {
	if !(d.Alpha > 0 && d.Beta > 0) || d.N < 0 {
		// Also catches NaN.
		return nan
	}
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	n, kf := float64(d.N), float64(ki)
	lp := combin.LogGeneralizedBinomial(n, kf)
	if d.Alpha+d.Beta < risingMinShape || d.N > risingMaxTerms {
		lp += mathext.Lbeta(kf+d.Alpha, n-kf+d.Beta) - mathext.Lbeta(d.Alpha, d.Beta)
	} else {
		// B(k+α, N-k+β) / B(α, β) = α^(k) β^(N-k) / (α+β)^(N)
		// in rising factorials. The difference of Lbetas
		// cancels catastrophically for large shapes.
		lp += logRising(d.Alpha, ki) + logRising(d.Beta, d.N-ki) - logRising(d.Alpha+d.Beta, d.N)
	}
	return math.Exp(lp)
}

// Above risingMinShape, PMF sums rising factorials term by term,
// for domains of up to risingMaxTerms trials.
const (
	risingMinShape = 100
	risingMaxTerms = 1 << 12
)

// logRising returns log(x (x+1) ... (x+m-1)) for x > 0.
func logRising(x float64, m int) float64 {
	s := float64(m) * math.Log(x)
	for i := 1; i < m; i++ {
		s += math.Log1p(float64(i) / x)
	}
	return s
}

func (d BetaBinomialDist) Mean() float64 {
	return float64(d.N) * d.Alpha / (d.Alpha + d.Beta)
}

func (d BetaBinomialDist) Variance() float64 {
	n, a, b := float64(d.N), d.Alpha, d.Beta
	return n * a * b * (a + b + n) / ((a + b) * (a + b) * (a + b + 1))
}

// BetaBinomial is the beta-binomial model. Over a domain of n values
// it is BetaBinomialDist{N: n-1, Alpha: a, Beta: b}, so offset 0 is
// zero successes and the probabilities sum to 1 over the domain.
type BetaBinomial struct{}

func (BetaBinomial) Name() string { return "beta_binomial" }

func (BetaBinomial) Label() string { return "Beta Binomial" }

func (BetaBinomial) ParamNames() []string { return []string{"a", "b"} }

func (BetaBinomial) PMF(k, n int, params []float64) float64 {
	if !validParams(params, 2) || n < 1 {
		return nan
	}
	return BetaBinomialDist{N: n - 1, Alpha: params[0], Beta: params[1]}.PMF(float64(k))
}

func (BetaBinomial) InitialGuess() []float64 { return []float64{1, 1} }

func (BetaBinomial) Bounds() (lo, hi []float64) {
	return []float64{0, 0}, []float64{math.Inf(1), math.Inf(1)}
}
