// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/go-distfit/distfit/discrete"
	"github.com/go-distfit/distfit/distfit"
	"github.com/go-distfit/distfit/fit"
)

func smallReport(t *testing.T) *distfit.Report {
	t.Helper()
	rep, err := distfit.Fit([]int{1, 2, 2, 2, 3}, nil)
	require.NoError(t, err)
	return rep
}

var statsTable = distfit.Table{
	Name:    "Stats",
	Columns: []string{"Mean", "Std"},
	Rows:    []distfit.Row{{Values: []float64{2, math.NaN()}}},
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{Table, Array, Markdown, HTML} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []distfit.Table{statsTable}, 3))
	want := `Stats:
+-------+-----+
| Mean  | Std |
|-------+-----|
| 2.000 | NaN |
+-------+-----+
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTextLabeled(t *testing.T) {
	tab := distfit.Table{
		Name:    "Params",
		Corner:  "Parameter",
		Columns: []string{"Value"},
		Rows: []distfit.Row{
			{Label: "Zipfian c", Values: []float64{1.30912}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []distfit.Table{tab}, 2))
	want := `Params:
+-----------+-------+
| Parameter | Value |
|-----------+-------|
| Zipfian c | 1.31  |
+-----------+-------+
`
	assert.Equal(t, want, buf.String())
}

func TestWriteTextReport(t *testing.T) {
	rep := smallReport(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, Table, 3))
	out := buf.String()
	for _, s := range []string{
		"Summary statistics of integers:",
		"Goodness-of-fit metrics from fitting distributions:",
		"Fitting parameters:",
		"| Fit Metric ",
		"Discrete Uniform",
		"| Chi-Square ",
		"| 0.320 ",
	} {
		assert.Contains(t, out, s)
	}
}

func TestWriteArrays(t *testing.T) {
	rep := smallReport(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, Array, 0))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[2, "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[[0.3"), lines[1])
	assert.Equal(t, 5, strings.Count(lines[1], "["), "one array per metric")
	// Beta binomial on a three-value domain has a and b; zipf has c.
	assert.Equal(t, 2, strings.Count(lines[2], ","))
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, []distfit.Table{statsTable}, 1))
	want := `### Stats

| Mean | Std |
| ---: | ---: |
| 2.0 | NaN |
`
	assert.Equal(t, want, buf.String())
}

func TestWriteHTML(t *testing.T) {
	rep := smallReport(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, HTML, 3))
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "<title>distfit</title>")
	assert.Equal(t, 3, strings.Count(out, "<table>"))
	assert.Contains(t, out, "Beta Binomial a")
}

func TestWriteXLSX(t *testing.T) {
	rep := smallReport(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, rep.Tables()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, sheetNames, f.GetSheetList())

	v, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Mean", v)
	v, err = f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	v, err = f.GetCellValue("Goodness of fit", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Chi-Square", v)
	v, err = f.GetCellValue("Goodness of fit", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Discrete Uniform", v)
}

func TestWriteXLSXNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.xlsx")
	require.NoError(t, WriteXLSX(path, []distfit.Table{statsTable}))
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "NaN", v)
}

func TestPlot(t *testing.T) {
	rep, err := distfit.Fit([]int{0, 1, 1, 2, 2, 2, 3, 3, 4}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePlot(&buf, rep, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	path := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, Plot(rep, path))
	assert.FileExists(t, path)
}

func TestLegendLabel(t *testing.T) {
	for _, tc := range []struct {
		model  discrete.Model
		params []float64
		want   string
	}{
		{discrete.Uniform{}, nil, "Discrete Uniform"},
		{discrete.BetaBinomial{}, []float64{1.513074, 3.782383}, "Beta Binomial (a = 1.51, b = 3.78)"},
		{discrete.Zipf{}, []float64{1.25}, "Zipfian (c = 1.25)"},
		{discrete.Zipf{}, []float64{12345.6}, "Zipfian (c = 1.23e+04)"},
	} {
		f := distfit.ModelFit{Model: tc.model, Result: fit.Result{Params: tc.params}}
		assert.Equal(t, tc.want, legendLabel(f))
	}

	rep, err := distfit.Fit([]int{0, 1, 1, 2, 2, 2, 3, 3, 4}, nil)
	require.NoError(t, err)
	require.Len(t, rep.Fits, 3)
	assert.Equal(t, "Discrete Uniform", legendLabel(rep.Fits[0]))
	assert.True(t, strings.HasPrefix(legendLabel(rep.Fits[1]), "Beta Binomial (a = "))
	assert.True(t, strings.HasPrefix(legendLabel(rep.Fits[2]), "Zipfian (c = "))
}

func TestPlotSingleValue(t *testing.T) {
	rep, err := distfit.Fit([]int{7, 7, 7}, &distfit.Options{Warnf: func(string, ...interface{}) {}})
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.NoError(t, WritePlot(&buf, rep, "svg"))
}
