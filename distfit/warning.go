// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

import (
	"errors"
	"fmt"

	"github.com/go-distfit/distfit/discrete"
	"github.com/go-distfit/distfit/fit"
)

// WarningKind classifies why a model could not be fit.
type WarningKind int

const (
	// NonConvergence means the optimizer gave up, typically at
	// the iteration cap.
	NonConvergence WarningKind = iota

	// DegenerateDomain means the domain has too few values for
	// the model's parameters, for example a sample with a single
	// distinct value.
	DegenerateDomain
)

func (k WarningKind) String() string {
	switch k {
	case NonConvergence:
		return "non-convergence"
	case DegenerateDomain:
		return "degenerate domain"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// A Warning records a model whose parameters and scores are NaN.
type Warning struct {
	// Model is the Name of the model.
	Model string

	// Label is the model's display name.
	Label string

	Kind WarningKind

	// Err is the fit error. It wraps fit.ErrNonConvergence or
	// fit.ErrDegenerateDomain.
	Err error
}

func newWarning(m discrete.Model, err error) Warning {
	kind := NonConvergence
	if errors.Is(err, fit.ErrDegenerateDomain) {
		kind = DegenerateDomain
	}
	return Warning{Model: m.Name(), Label: m.Label(), Kind: kind, Err: err}
}

func (w Warning) String() string {
	return fmt.Sprintf("could not optimize %s fit: %v", w.Label, w.Err)
}
