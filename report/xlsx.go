// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/go-distfit/distfit/distfit"
)

// sheetNames are the worksheet names for the report tables, in
// Tables order. Excel limits sheet names to 31 characters.
var sheetNames = []string{"Summary", "Goodness of fit", "Parameters"}

// WriteXLSX saves tables to the spreadsheet at path, one worksheet
// per table. NaN values are written as the text "NaN".
func WriteXLSX(path string, tables []distfit.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		name := fmt.Sprintf("Table %d", i+1)
		if i < len(sheetNames) {
			name = sheetNames[i]
		}
		// The new file already holds one empty sheet.
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := writeSheet(f, name, t); err != nil {
			return fmt.Errorf("report: sheet %q: %w", name, err)
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, t distfit.Table) error {
	set := func(col, row int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	labeled := t.Corner != ""
	for _, r := range t.Rows {
		labeled = labeled || r.Label != ""
	}
	off := 1
	if labeled {
		off = 2
		if err := set(1, 1, t.Corner); err != nil {
			return err
		}
	}

	// Header row
	for j, c := range t.Columns {
		if err := set(j+off, 1, c); err != nil {
			return err
		}
	}

	// Data rows
	for i, r := range t.Rows {
		if labeled {
			if err := set(1, i+2, r.Label); err != nil {
				return err
			}
		}
		for j, v := range r.Values {
			var cv interface{} = v
			if math.IsNaN(v) || math.IsInf(v, 0) {
				cv = fmt.Sprint(v)
			}
			if err := set(j+off, i+2, cv); err != nil {
				return err
			}
		}
	}
	return nil
}
