// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("1\n 2 \n\n3.0\n-4\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, -4}, got)

	got, err = readInput(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"1\n2.5\n", "1\nx\n", "NaN\n", "1e300\n"} {
		_, err := readInput(strings.NewReader(bad))
		assert.Error(t, err, "%q", bad)
	}
	_, err = readInput(strings.NewReader("1\n\nfoo\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "3: "), err.Error())
}

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunTable(t *testing.T) {
	code, out, _ := runCmd(t, "1\n2\n2\n2\n3\n")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Summary statistics of integers:")
	assert.Contains(t, out, "| 2.000 ")
	assert.Contains(t, out, "Discrete Uniform")
}

func TestRunFileAndFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(in, []byte("0\n1\n1\n2\n2\n2\n3\n3\n4\n"), 0o644))

	code, out, _ := runCmd(t, "", "--format=markdown", "--precision=2", in)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "### Fitting parameters")
	assert.Contains(t, out, "| Beta Binomial a |")
}

func TestRunWarnings(t *testing.T) {
	code, out, errOut := runCmd(t, "5\n5\n5\n")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "NaN")
	assert.Contains(t, errOut, "[WARN] could not optimize Beta Binomial fit")
	assert.Contains(t, errOut, "[WARN] could not optimize Zipfian fit")

	_, _, errOut = runCmd(t, "5\n5\n5\n", "--log-level=error")
	assert.Empty(t, errOut)
}

func TestRunLBFGS(t *testing.T) {
	var in strings.Builder
	for v, c := range []int{10, 12, 9, 7, 5, 2, 2, 1} {
		in.WriteString(strings.Repeat(fmt.Sprintf("%d\n", v), c))
	}
	code, out, errOut := runCmd(t, in.String(), "--method=lbfgs", "--format=markdown")
	require.Equal(t, 0, code)
	assert.NotContains(t, errOut, "could not optimize")
	assert.Contains(t, out, "| Beta Binomial a | 1.51")
	assert.Contains(t, out, "| Beta Binomial b | 3.78")
}

func TestRunOutputs(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "fit.xlsx")
	chart := filepath.Join(dir, "fit.svg")
	code, out, _ := runCmd(t, "1\n2\n2\n3\n3\n3\n4\n",
		"--print=false", "--xlsx="+xlsx, "--plot", "--plot-file="+chart)
	require.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.FileExists(t, chart)

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}

func TestRunErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		stdin string
		args  []string
		code  int
	}{
		"empty input":    {"", nil, 1},
		"blank input":    {"\n\n", nil, 1},
		"bad value":      {"1\nabc\n", nil, 1},
		"missing file":   {"", []string{filepath.Join(t.TempDir(), "none")}, 1},
		"unknown flag":   {"1\n", []string{"--bogus"}, 2},
		"two files":      {"1\n", []string{"a", "b"}, 2},
		"bad method":     {"1\n", []string{"--method=simplex"}, 1},
		"few iterations": {"1\n", []string{"--max-iterations=10"}, 1},
		"missing config": {"1\n", []string{"--config=" + filepath.Join(t.TempDir(), "none.yaml")}, 1},
	} {
		t.Run(name, func(t *testing.T) {
			code, _, _ := runCmd(t, tc.stdin, tc.args...)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestRunEnv(t *testing.T) {
	t.Setenv("DISTFIT_OUTPUT_FORMAT", "array")
	code, out, _ := runCmd(t, "1\n2\n2\n2\n3\n")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "[2, "), out)
}
