// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distfit

// A Table is a labeled grid of numbers. Tables are plain data; the
// report package renders them.
type Table struct {
	// Name is a short title for the table.
	Name string

	// Corner labels the column of row labels. It may be empty.
	Corner string

	// Columns are the column headers, one per value in each row.
	Columns []string

	Rows []Row
}

// A Row is one labeled row of a Table.
type Row struct {
	Label  string
	Values []float64
}

// Metric names, in the order of the goodness-of-fit table.
var Metrics = []string{"Chi-Square", "R-Square", "RMSE", "K-S"}

// StatsTable returns the 1×5 table of sample statistics.
func (r *Report) StatsTable() Table {
	s := r.Summary
	return Table{
		Name:    "Summary statistics of integers",
		Columns: []string{"Mean", "Std", "Range", "Variance", "IQR"},
		Rows: []Row{
			{Values: []float64{s.Mean, s.StdDev, s.Range, s.Variance, s.IQR}},
		},
	}
}

// GoodnessOfFitTable returns the table of goodness-of-fit metrics,
// one row per metric and one column per model.
func (r *Report) GoodnessOfFitTable() Table {
	t := Table{
		Name:   "Goodness-of-fit metrics from fitting distributions",
		Corner: "Fit Metric",
	}
	rows := make([][]float64, len(Metrics))
	for _, f := range r.Fits {
		t.Columns = append(t.Columns, f.Model.Label())
		g := f.GoodnessOfFit
		for i, v := range []float64{g.ChiSquare, g.RSquared, g.RMSE, g.KS} {
			rows[i] = append(rows[i], v)
		}
	}
	for i, name := range Metrics {
		t.Rows = append(t.Rows, Row{Label: name, Values: rows[i]})
	}
	return t
}

// ParamsTable returns the fitted parameters, one row per parameter
// of each model. Models without parameters contribute no rows.
func (r *Report) ParamsTable() Table {
	t := Table{
		Name:    "Fitting parameters",
		Corner:  "Parameter",
		Columns: []string{"Value"},
	}
	for _, f := range r.Fits {
		for i, name := range f.Model.ParamNames() {
			t.Rows = append(t.Rows, Row{
				Label:  f.Model.Label() + " " + name,
				Values: []float64{f.Result.Params[i]},
			})
		}
	}
	return t
}

// Tables returns the statistics, goodness-of-fit and parameter
// tables, in that order.
func (r *Report) Tables() []Table {
	return []Table{r.StatsTable(), r.GoodnessOfFitTable(), r.ParamsTable()}
}
