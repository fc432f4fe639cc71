// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// MaxDomain is the largest domain NewIntHist will allocate counts
// for.
const MaxDomain = 1 << 24

// IntHist is the frequency table of an integer sample over the
// contiguous domain [Min, Max]. Every integer in the domain has a
// bin, including ones that were never observed.
type IntHist struct {
	// Min and Max are the smallest and largest observed values.
	Min, Max int

	// Counts[i] is the number of observations of Min+i.
	Counts []int

	// N is the total number of observations.
	N int
}

// NewIntHist returns the frequency table of xs.
//
// It fails with ErrEmptyInput if xs is empty and ErrDomainTooLarge if
// the domain of xs has more than MaxDomain values.
func NewIntHist(xs []int) (*IntHist, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}

	min, max := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		} else if x > max {
			max = x
		}
	}
	// max >= min, so the unsigned difference is exact even when
	// max-min overflows int.
	if d := uint64(max) - uint64(min); d >= MaxDomain {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrDomainTooLarge, min, max)
	}

	h := &IntHist{Min: min, Max: max, Counts: make([]int, max-min+1), N: len(xs)}
	for _, x := range xs {
		h.Counts[x-min]++
	}
	return h, nil
}

// Len returns the number of values in the domain of h.
func (h *IntHist) Len() int {
	return len(h.Counts)
}

// Value returns the integer at offset i of the domain.
func (h *IntHist) Value(i int) int {
	return h.Min + i
}

// Domain returns the integers Min through Max.
func (h *IntHist) Domain() []int {
	xs := make([]int, h.Len())
	for i := range xs {
		xs[i] = h.Value(i)
	}
	return xs
}

// PMF returns the empirical probability of each value in the domain,
// Counts[i] / N. The result sums to 1.
func (h *IntHist) PMF() []float64 {
	ps := make([]float64, h.Len())
	n := float64(h.N)
	for i, c := range h.Counts {
		ps[i] = float64(c) / n
	}
	return ps
}
