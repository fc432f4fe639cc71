// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats builds empirical distributions of integer samples and
// scores fitted distributions against them.
package stats // import "github.com/go-distfit/distfit/stats"

import (
	"errors"
	"math"
)

var nan = math.NaN()

var (
	// ErrEmptyInput is returned when a sample has no observations.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrDomainTooLarge is returned when the range of a sample
	// exceeds MaxDomain.
	ErrDomainTooLarge = errors.New("stats: domain too large")
)
