// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/go-distfit/distfit/distfit"
)

// Default plot size.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// NewPlot returns a chart of the observed distribution as bars with
// the fitted probabilities of every converged model overlaid as
// lines.
func NewPlot(rep *distfit.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Fitted distributions"
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Probability"
	p.Legend.Top = true

	bars, err := plotter.NewBarChart(plotter.Values(rep.Observed), vg.Points(10))
	if err != nil {
		return nil, err
	}
	bars.XMin = float64(rep.Hist.Min)
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = plotutil.Color(len(rep.Fits))
	p.Add(bars)
	p.Legend.Add("Observed", bars)

	for i, f := range rep.Fits {
		if !f.Result.Converged() {
			continue
		}
		pts := make(plotter.XYs, len(f.Fitted))
		for k, y := range f.Fitted {
			pts[k].X = float64(rep.Hist.Value(k))
			pts[k].Y = y
		}
		l, s, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		s.Color = plotutil.Color(i)
		s.Shape = plotutil.Shape(i)
		p.Add(l, s)
		p.Legend.Add(legendLabel(f), l, s)
	}
	return p, nil
}

// legendLabel names a fitted model with its parameter values, as in
// "Zipfian (c = 1.2)".
func legendLabel(f distfit.ModelFit) string {
	names := f.Model.ParamNames()
	if len(names) == 0 || len(f.Result.Params) != len(names) {
		return f.Model.Label()
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s = %.3g", name, f.Result.Params[i])
	}
	return fmt.Sprintf("%s (%s)", f.Model.Label(), strings.Join(parts, ", "))
}

// WritePlot renders the chart of rep to w. format is an image format
// understood by gonum/plot, such as "png", "svg" or "pdf".
func WritePlot(w io.Writer, rep *distfit.Report, format string) error {
	p, err := NewPlot(rep)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Plot saves the chart of rep to path. The image format is chosen
// from the file extension.
func Plot(rep *distfit.Report, path string) error {
	p, err := NewPlot(rep)
	if err != nil {
		return err
	}
	return p.Save(PlotWidth, PlotHeight, path)
}
