// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/go-distfit/distfit/distfit"
)

// WriteMarkdown writes each table as a markdown table under a level
// three heading.
func WriteMarkdown(w io.Writer, tables []distfit.Table, prec int) error {
	var buf bytes.Buffer
	writeMarkdown(&buf, tables, prec)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeMarkdown(buf *bytes.Buffer, tables []distfit.Table, prec int) {
	row := func(cells []string) {
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		fmt.Fprintf(buf, "| %s |\n", strings.Join(cells, " | "))
	}
	for i, t := range tables {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "### %s\n\n", t.Name)
		header, body := cells(t, prec)
		row(header)
		sep := make([]string, len(header))
		for j := range sep {
			sep[j] = "---:"
		}
		if t.Corner != "" {
			sep[0] = ":---"
		}
		row(sep)
		for _, r := range body {
			row(r)
		}
	}
}

// WriteHTML writes the tables as a complete HTML page.
func WriteHTML(w io.Writer, tables []distfit.Table, prec int) error {
	var buf bytes.Buffer
	writeMarkdown(&buf, tables, prec)

	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{
		Title: "distfit",
		Flags: html.CommonFlags | html.CompletePage,
	})
	_, err := w.Write(markdown.ToHTML(buf.Bytes(), p, r))
	return err
}
