// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import "math"

// A bound maps a parameter constrained to (lo, hi) onto the whole
// real line, so an unconstrained optimizer can search it.
type bound struct {
	lo, hi float64
}

// maxSpan caps the exponent of the one-sided transforms, so a
// half-bounded parameter never exceeds lo+e^maxSpan (about 1e13 from
// its bound). Beyond that, log-space PMFs lose all precision and the
// objective is flat.
const maxSpan = 30

// toParam maps an unconstrained value u into (lo, hi).
func (b bound) toParam(u float64) float64 {
	loInf, hiInf := math.IsInf(b.lo, -1), math.IsInf(b.hi, 1)
	switch {
	case loInf && hiInf:
		return u
	case hiInf:
		return b.lo + math.Exp(math.Min(u, maxSpan))
	case loInf:
		return b.hi - math.Exp(math.Min(-u, maxSpan))
	default:
		return b.lo + (b.hi-b.lo)/(1+math.Exp(-u))
	}
}

// fromParam is the inverse of toParam. x must lie strictly inside
// (lo, hi).
func (b bound) fromParam(x float64) float64 {
	loInf, hiInf := math.IsInf(b.lo, -1), math.IsInf(b.hi, 1)
	switch {
	case loInf && hiInf:
		return x
	case hiInf:
		return math.Log(x - b.lo)
	case loInf:
		return -math.Log(b.hi - x)
	default:
		p := (x - b.lo) / (b.hi - b.lo)
		return math.Log(p / (1 - p))
	}
}

// bounds is the per-parameter transform of one model.
type bounds []bound

func newBounds(lo, hi []float64) bounds {
	bs := make(bounds, len(lo))
	for i := range bs {
		bs[i] = bound{lo[i], hi[i]}
	}
	return bs
}

func (bs bounds) toParams(dst, us []float64) []float64 {
	for i, b := range bs {
		dst[i] = b.toParam(us[i])
	}
	return dst
}

func (bs bounds) fromParams(xs []float64) []float64 {
	us := make([]float64, len(xs))
	for i, b := range bs {
		us[i] = b.fromParam(xs[i])
	}
	return us
}
