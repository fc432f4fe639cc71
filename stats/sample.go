// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// Sample is a collection of observations.
//
// The descriptive statistics of a Sample are population statistics:
// StdDev and Variance divide by len(Xs), not len(Xs)-1.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// IntSample returns a Sample holding the values of xs.
func IntSample(xs []int) Sample {
	s := Sample{Xs: make([]float64, len(xs))}
	for i, x := range xs {
		s.Xs[i] = float64(x)
	}
	return s
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	min, _ = mstats.Min(s.Xs)
	max, _ = mstats.Max(s.Xs)
	return
}

// Range returns max - min of the Sample, or NaN if it is empty.
func (s Sample) Range() float64 {
	min, max := s.Bounds()
	return max - min
}

// Mean returns the arithmetic mean of the Sample, or NaN if it is
// empty.
func (s Sample) Mean() float64 {
	m, err := mstats.Mean(s.Xs)
	if err != nil {
		return nan
	}
	return m
}

// Variance returns the population variance of the Sample.
func (s Sample) Variance() float64 {
	v, err := mstats.PopulationVariance(s.Xs)
	if err != nil {
		return nan
	}
	return v
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	sd, err := mstats.StandardDeviationPopulation(s.Xs)
	if err != nil {
		return nan
	}
	return sd
}

// Quantile returns the q'th quantile of the Sample, 0 <= q <= 1.
//
// Quantiles are linearly interpolated between the closest ranks: the
// q'th quantile lies at (len(Xs)-1)*q in the sorted sample. Values of
// q outside [0, 1] are clamped. Quantile returns NaN for an empty
// Sample.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 || math.IsNaN(q) {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	if q <= 0 {
		return s.Xs[0]
	} else if q >= 1 {
		return s.Xs[len(s.Xs)-1]
	}

	h := float64(len(s.Xs)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(s.Xs) {
		return s.Xs[i]
	}
	return s.Xs[i] + (h-lo)*(s.Xs[i+1]-s.Xs[i])
}

// IQR returns the interquartile range of the Sample, the difference
// between its 75th and 25th percentiles.
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Quantile(0.75) - s.Quantile(0.25)
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}
