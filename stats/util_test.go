// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// naneq is like aeq, but also considers two NaNs equal.
func naneq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	return aeq(expect, got)
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !naneq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, in, want, got)
		}
	}
}
