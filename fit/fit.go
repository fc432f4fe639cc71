// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit estimates the parameters of discrete models by
// bounded nonlinear least squares.
//
// A fit never fails loudly. A model that cannot be fit to the data
// produces a Failed Result whose parameters are all NaN, so callers
// can keep scoring the remaining models.
package fit // import "github.com/go-distfit/distfit/fit"

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/go-distfit/distfit/discrete"
)

// DefaultMaxIterations is the iteration cap used when
// Fitter.MaxIterations is 0.
const DefaultMaxIterations = 5000

var (
	// ErrNonConvergence indicates the optimizer stopped without
	// converging, usually because it hit the iteration cap.
	ErrNonConvergence = errors.New("fit: optimizer did not converge")

	// ErrDegenerateDomain indicates the domain has too few values
	// to fit the model's parameters.
	ErrDegenerateDomain = errors.New("fit: domain too small for model")
)

// Method selects the optimization algorithm.
type Method int

const (
	// NelderMead is the derivative-free downhill simplex method.
	NelderMead Method = iota

	// LBFGS is the limited-memory BFGS quasi-Newton method, with
	// gradients estimated by central finite differences.
	LBFGS
)

var methodNames = map[Method]string{
	NelderMead: "nelder-mead",
	LBFGS:      "lbfgs",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the Method named s, as printed by
// Method.String.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("fit: unknown method %q", s)
}

// Status is the outcome of a fit.
type Status int

const (
	Converged Status = iota
	Failed
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of fitting one model.
type Result struct {
	// Model is the Name of the fitted model.
	Model string

	// Params are the fitted parameters, in the order of the
	// model's ParamNames. If Status is Failed, every parameter
	// is NaN.
	Params []float64

	Status Status

	// Err describes why the fit failed. It wraps
	// ErrNonConvergence or ErrDegenerateDomain. It is nil if
	// Status is Converged.
	Err error

	// Iterations is the number of optimizer iterations used.
	Iterations int

	// SSE is the sum of squared residuals at Params, or NaN.
	SSE float64
}

// Converged reports whether r holds usable parameters.
func (r Result) Converged() bool {
	return r.Status == Converged
}

// A Fitter fits models to observed probability vectors. The zero
// value is ready to use.
type Fitter struct {
	// MaxIterations caps the number of optimizer iterations. If
	// it is 0, DefaultMaxIterations is used.
	MaxIterations int

	// Method is the optimization algorithm.
	Method Method
}

func (f Fitter) maxIterations() int {
	if f.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return f.MaxIterations
}

// Fit finds the parameters of m that minimize
//
//	Σ_k (m.PMF(k, n, params) - observed[k])²
//
// where n = len(observed). Parameters are kept within m.Bounds by
// optimizing over a transformed space, starting from
// m.InitialGuess.
//
// A model with no parameters is evaluated directly. A domain with no
// more values than m has parameters can't determine them, and fails
// with ErrDegenerateDomain.
func (f Fitter) Fit(m discrete.Model, observed []float64) Result {
	n := len(observed)
	np := len(m.ParamNames())
	if np == 0 {
		return Result{
			Model:  m.Name(),
			Params: []float64{},
			SSE:    sse(discrete.Eval(m, n, nil), observed),
		}
	}
	if n <= np {
		return failed(m, 0, fmt.Errorf("%w: %d values for %d parameters", ErrDegenerateDomain, n, np))
	}

	lo, hi := m.Bounds()
	bs := newBounds(lo, hi)
	params := make([]float64, np)
	pred := make([]float64, n)
	objective := func(u []float64) float64 {
		bs.toParams(params, u)
		for k := range pred {
			pred[k] = m.PMF(k, n, params)
		}
		s := sse(pred, observed)
		if math.IsNaN(s) {
			// Steer the optimizer away from invalid
			// parameters.
			return math.Inf(1)
		}
		return s
	}

	problem := optimize.Problem{Func: objective}
	var method optimize.Method
	var grad func(grad, u []float64)
	switch f.Method {
	case LBFGS:
		settings := &fd.Settings{Formula: fd.Central}
		grad = func(grad, u []float64) {
			fd.Gradient(grad, objective, u, settings)
		}
		problem.Grad = grad
		method = &optimize.LBFGS{GradStopThreshold: gradStop}
	default:
		method = &optimize.NelderMead{}
	}
	settings := &optimize.Settings{
		MajorIterations: f.maxIterations(),
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-15,
			Relative:   1e-12,
			Iterations: 100,
		},
	}

	res, err := optimize.Minimize(problem, bs.fromParams(m.InitialGuess()), settings, method)
	if res == nil {
		return failed(m, 0, fmt.Errorf("%w: %v", ErrNonConvergence, err))
	}
	if err != nil && !(stalled(err) && stationary(grad, res.X)) {
		return failed(m, res.MajorIterations, fmt.Errorf("%w: %v", ErrNonConvergence, err))
	}
	if err == nil && !converged(res.Status) {
		return failed(m, res.MajorIterations, fmt.Errorf("%w: %v after %d iterations", ErrNonConvergence, res.Status, res.MajorIterations))
	}
	out := bs.toParams(make([]float64, np), res.X)
	if math.IsInf(res.F, 0) || math.IsNaN(res.F) || floats.HasNaN(out) {
		return failed(m, res.MajorIterations, fmt.Errorf("%w: no valid parameters found", ErrNonConvergence))
	}
	return Result{
		Model:      m.Name(),
		Params:     out,
		Iterations: res.MajorIterations,
		SSE:        res.F,
	}
}

// Gradient tolerances in the transformed space. The objective is a
// sum of squared probability differences, so gradients start out
// around 1e-2.
const (
	// gradStop ends a gradient-based search.
	gradStop = 1e-10

	// stallGrad is the largest gradient at which a line search
	// that can make no further progress is taken as converged.
	// Finite-difference gradients bottom out well above gradStop.
	stallGrad = 1e-6
)

// stalled reports whether err means the line search could not find
// a lower point along the search direction.
func stalled(err error) bool {
	return errors.Is(err, optimize.ErrNoProgress) || errors.Is(err, optimize.ErrLinesearcherFailure)
}

// stationary reports whether the gradient at u is within stallGrad
// of zero. It is false if grad is nil.
func stationary(grad func(grad, u []float64), u []float64) bool {
	if grad == nil {
		return false
	}
	g := make([]float64, len(u))
	grad(g, u)
	return !floats.HasNaN(g) && floats.Norm(g, math.Inf(1)) <= stallGrad
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.GradientThreshold,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return true
	}
	return false
}

func failed(m discrete.Model, iterations int, err error) Result {
	params := make([]float64, len(m.ParamNames()))
	for i := range params {
		params[i] = math.NaN()
	}
	return Result{
		Model:      m.Name(),
		Params:     params,
		Status:     Failed,
		Err:        err,
		Iterations: iterations,
		SSE:        math.NaN(),
	}
}

// sse returns the sum of squared differences of xs and ys.
func sse(xs, ys []float64) float64 {
	s := 0.0
	for i, x := range xs {
		d := x - ys[i]
		s += d * d
	}
	return s
}
