// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders the results of distfit.Fit as text tables,
// markdown, HTML, spreadsheets and charts.
//
// Rendering never changes the results: every function here reads a
// *distfit.Report or its Tables and writes a representation of them.
package report // import "github.com/go-distfit/distfit/report"

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-distfit/distfit/distfit"
)

// Format selects how Write renders a report.
type Format int

const (
	// Table renders bordered text tables.
	Table Format = iota

	// Array renders the raw statistics, metric matrix and
	// parameter vector as bracketed arrays.
	Array

	// Markdown renders markdown tables.
	Markdown

	// HTML renders a complete HTML page.
	HTML
)

var formatNames = []string{
	Table:    "table",
	Array:    "array",
	Markdown: "markdown",
	HTML:     "html",
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if name == s {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("report: unknown format %q", s)
}

// Write renders rep to w in format f, printing numbers with prec
// digits after the decimal point.
func Write(w io.Writer, rep *distfit.Report, f Format, prec int) error {
	switch f {
	case Table:
		return WriteText(w, rep.Tables(), prec)
	case Array:
		return WriteArrays(w, rep)
	case Markdown:
		return WriteMarkdown(w, rep.Tables(), prec)
	case HTML:
		return WriteHTML(w, rep.Tables(), prec)
	}
	return fmt.Errorf("report: unknown format %v", f)
}

// formatValue formats x with prec decimals.
func formatValue(x float64, prec int) string {
	return strconv.FormatFloat(x, 'f', prec, 64)
}
