// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-distfit/distfit/distfit"
)

// cells returns the header and body of t as strings. The row label
// column is only included if the table has a corner label or any
// labeled row.
func cells(t distfit.Table, prec int) (header []string, body [][]string) {
	labeled := t.Corner != ""
	for _, r := range t.Rows {
		labeled = labeled || r.Label != ""
	}
	if labeled {
		header = append(header, t.Corner)
	}
	header = append(header, t.Columns...)
	for _, r := range t.Rows {
		var row []string
		if labeled {
			row = append(row, r.Label)
		}
		for _, v := range r.Values {
			row = append(row, formatValue(v, prec))
		}
		body = append(body, row)
	}
	return
}

// WriteText writes each table as a bordered text table preceded by
// its name.
//
//	Summary statistics of integers:
//	+-------+-------+-------+----------+-------+
//	| Mean  | Std   | Range | Variance | IQR   |
//	|-------+-------+-------+----------+-------|
//	| 2.000 | 0.632 | 2.000 | 0.400    | 0.000 |
//	+-------+-------+-------+----------+-------+
func WriteText(w io.Writer, tables []distfit.Table, prec int) error {
	bw := bufio.NewWriter(w)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s:\n", t.Name)
		header, body := cells(t, prec)

		widths := make([]int, len(header))
		for _, row := range append([][]string{header}, body...) {
			for j, c := range row {
				if n := utf8.RuneCountInString(c); n > widths[j] {
					widths[j] = n
				}
			}
		}

		rule := func(edge, join string) {
			bw.WriteString(edge)
			for j, wid := range widths {
				if j > 0 {
					bw.WriteString(join)
				}
				bw.WriteString(strings.Repeat("-", wid+2))
			}
			bw.WriteString(edge + "\n")
		}
		line := func(row []string) {
			for j, c := range row {
				pad := widths[j] - utf8.RuneCountInString(c)
				fmt.Fprintf(bw, "| %s%s ", c, strings.Repeat(" ", pad))
			}
			bw.WriteString("|\n")
		}

		rule("+", "+")
		line(header)
		rule("|", "+")
		for _, row := range body {
			line(row)
		}
		rule("+", "+")
	}
	return bw.Flush()
}

// WriteArrays writes the raw results as three bracketed arrays: the
// sample statistics, the goodness-of-fit matrix (one inner array per
// metric) and the fitted parameters of every model.
//
// Values are printed at full precision.
func WriteArrays(w io.Writer, rep *distfit.Report) error {
	bw := bufio.NewWriter(w)
	array := func(xs []float64) string {
		s := make([]string, len(xs))
		for i, x := range xs {
			s[i] = fmt.Sprint(x)
		}
		return "[" + strings.Join(s, ", ") + "]"
	}

	fmt.Fprintln(bw, array(rep.StatsTable().Rows[0].Values))

	var rows []string
	for _, r := range rep.GoodnessOfFitTable().Rows {
		rows = append(rows, array(r.Values))
	}
	fmt.Fprintln(bw, "["+strings.Join(rows, ", ")+"]")

	var params []float64
	for _, f := range rep.Fits {
		params = append(params, f.Result.Params...)
	}
	fmt.Fprintln(bw, array(params))
	return bw.Flush()
}
