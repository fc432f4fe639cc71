// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distfit fits candidate discrete distributions to a sample
// of integers and compares how well each one fits.
//
// Fit builds the empirical distribution of the sample over the
// contiguous range of observed values, fits every model to it by
// least squares, and scores each fit with chi-square, R², RMSE and
// the Kolmogorov-Smirnov statistic:
//
//	rep, err := distfit.Fit([]int{1, 2, 2, 2, 3}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	gof, _ := rep.GoodnessOfFit("uniform")
//	fmt.Println(gof.RSquared) // 0
//
// A model that can't be fit doesn't stop the run. Its parameters
// and scores are NaN and the reason is recorded in Report.Warnings.
package distfit // import "github.com/go-distfit/distfit/distfit"

import (
	"fmt"
	"math"

	"github.com/go-distfit/distfit/discrete"
	"github.com/go-distfit/distfit/fit"
	"github.com/go-distfit/distfit/stats"
)

// ErrEmptyInput is returned by Fit for an empty sample.
var ErrEmptyInput = stats.ErrEmptyInput

// Options controls a run of Fit. A nil *Options is equivalent to
// the zero Options.
type Options struct {
	// Models are the models to fit, in reporting order. If nil,
	// discrete.Default() is used.
	Models []discrete.Model

	// Fitter fits each model's parameters.
	Fitter fit.Fitter

	// Warnf, if non-nil, is called once for every model that
	// could not be fit.
	Warnf func(format string, args ...interface{})
}

// Summary holds descriptive statistics of the raw sample. StdDev and
// Variance are population statistics.
type Summary struct {
	Mean, StdDev, Range, Variance, IQR float64
}

// ModelFit is the fit of one model to the sample.
type ModelFit struct {
	Model  discrete.Model
	Result fit.Result

	// Fitted is the model's probability for each value in the
	// domain, aligned with Report.Observed. It is all NaN if the
	// fit failed.
	Fitted []float64

	GoodnessOfFit stats.GoodnessOfFit
}

// Report is the result of Fit.
type Report struct {
	// Hist is the frequency table of the sample.
	Hist *stats.IntHist

	// Observed is the empirical probability of each value in the
	// domain.
	Observed []float64

	Summary Summary

	// Fits holds one entry per model, in Options.Models order.
	Fits []ModelFit

	// Warnings lists the models that could not be fit.
	Warnings []Warning
}

// Fit fits each model in opts to sample.
//
// Fit only fails if the sample itself is unusable: it returns an
// error wrapping ErrEmptyInput if sample is empty, or
// stats.ErrDomainTooLarge if its range is too wide.
func Fit(sample []int, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	models := opts.Models
	if models == nil {
		models = discrete.Default()
	}

	hist, err := stats.NewIntHist(sample)
	if err != nil {
		return nil, fmt.Errorf("distfit: %w", err)
	}
	rep := &Report{
		Hist:     hist,
		Observed: hist.PMF(),
		Summary:  summarize(hist, sample),
	}

	n := hist.Len()
	for _, m := range models {
		res := opts.Fitter.Fit(m, rep.Observed)
		mf := ModelFit{Model: m, Result: res}
		if res.Converged() {
			mf.Fitted = discrete.Eval(m, n, res.Params)
		} else {
			mf.Fitted = nanVector(n)
		}
		mf.GoodnessOfFit = stats.Score(rep.Observed, mf.Fitted)
		rep.Fits = append(rep.Fits, mf)

		if !res.Converged() {
			w := newWarning(m, res.Err)
			rep.Warnings = append(rep.Warnings, w)
			if opts.Warnf != nil {
				opts.Warnf("%s", w)
			}
		}
	}
	return rep, nil
}

func nanVector(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.NaN()
	}
	return xs
}

// summarize computes the sample statistics on offsets from h.Min,
// which are exact in float64 even when the values themselves are
// not.
func summarize(h *stats.IntHist, sample []int) Summary {
	offs := make([]int, len(sample))
	for i, x := range sample {
		offs[i] = x - h.Min
	}
	s := stats.IntSample(offs)
	s.Sort()
	return Summary{
		Mean:     float64(h.Min) + s.Mean(),
		StdDev:   s.StdDev(),
		Range:    float64(h.Max - h.Min),
		Variance: s.Variance(),
		IQR:      s.IQR(),
	}
}

// Fit returns the fit of the model named name.
func (r *Report) Fit(name string) (ModelFit, bool) {
	for _, f := range r.Fits {
		if f.Model.Name() == name {
			return f, true
		}
	}
	return ModelFit{}, false
}

// GoodnessOfFit returns the scores of the model named name.
func (r *Report) GoodnessOfFit(name string) (stats.GoodnessOfFit, bool) {
	f, ok := r.Fit(name)
	return f.GoodnessOfFit, ok
}

// Params returns the fitted parameters of each model that has any,
// keyed by model name and then parameter name.
func (r *Report) Params() map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, f := range r.Fits {
		names := f.Model.ParamNames()
		if len(names) == 0 {
			continue
		}
		ps := make(map[string]float64, len(names))
		for i, name := range names {
			ps[name] = f.Result.Params[i]
		}
		out[f.Model.Name()] = ps
	}
	return out
}
