// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distfit reads newline-separated integers and reports how well
// the discrete uniform, beta-binomial and Zipf distributions fit them.
//
// Usage:
//
//	distfit [flags] [file]
//
// With no file, or file "-", distfit reads standard input. Settings
// may also come from a --config file or DISTFIT_* environment
// variables; see internal/config.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/go-distfit/distfit/distfit"
	"github.com/go-distfit/distfit/internal/config"
	"github.com/go-distfit/distfit/internal/logger"
	"github.com/go-distfit/distfit/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status: 0 on
// success, 1 on any failure including bad input or configuration,
// and 2 on a command-line usage error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("distfit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: distfit [flags] [file]\n")
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()

	path, _ := fs.GetString("config")
	cfg, err := config.Load(path, fs)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Init(stderr, "info", "plain")
		logger.Error("%v", err)
		return 1
	}
	logger.Init(stderr, cfg.Logging.Level, cfg.Logging.Format)

	name := fs.Arg(0)
	sample, err := readFile(name, stdin)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	logger.Debug("read %d values; fitting with %v", len(sample), cfg.Fit.Method)

	rep, err := distfit.Fit(sample, &distfit.Options{
		Fitter: cfg.Fitter(),
		Warnf:  logger.Warn,
	})
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	for _, f := range rep.Fits {
		logger.Debug("%s: %v after %d iterations, params %v", f.Model.Name(), f.Result.Status, f.Result.Iterations, f.Result.Params)
	}

	if cfg.Output.Print {
		if err := report.Write(stdout, rep, cfg.Format(), cfg.Output.Precision); err != nil {
			logger.Error("writing report: %v", err)
			return 1
		}
	}
	if cfg.Output.XLSX != "" {
		if err := report.WriteXLSX(cfg.Output.XLSX, rep.Tables()); err != nil {
			logger.Error("writing %s: %v", cfg.Output.XLSX, err)
			return 1
		}
		logger.Info("wrote %s", cfg.Output.XLSX)
	}
	if cfg.Plot.Enabled {
		if err := report.Plot(rep, cfg.Plot.File); err != nil {
			logger.Error("plotting to %s: %v", cfg.Plot.File, err)
			return 1
		}
		logger.Info("wrote %s", cfg.Plot.File)
	}
	return 0
}

// readFile reads the sample from the named file, or from stdin if
// name is empty or "-".
func readFile(name string, stdin io.Reader) ([]int, error) {
	if name == "" || name == "-" {
		return readInput(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sample, err := readInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", name, err)
	}
	return sample, nil
}

// readInput parses one integer per line. Blank lines are skipped and
// values such as "3.0" that are integers written as floats are
// accepted.
func readInput(r io.Reader) ([]int, error) {
	var sample []int
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := parseInt(l)
		if err != nil {
			return nil, fmt.Errorf("%d: %w", line, err)
		}
		sample = append(sample, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sample, nil
}

func parseInt(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
