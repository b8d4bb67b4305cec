// format.go renders tables and cross-tabulations as text for terminal
// inspection.
package dataplot

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pivolan/dataplot/config"
)

// Render draws the table with go-pretty, one header row plus one line per
// data row. Missing cells show as the configured missing token, or "NA"
// when that token is empty.
func (t *Table) Render() string {
	token := config.GetConfig().MissingToken
	if token == "" {
		token = "NA"
	}

	w := table.NewWriter()
	header := table.Row{}
	for _, name := range t.Names() {
		header = append(header, name)
	}
	w.AppendHeader(header)

	for i := 0; i < t.Len(); i++ {
		row := table.Row{}
		for _, c := range t.cols {
			row = append(row, c.label(i, token))
		}
		w.AppendRow(row)
	}

	w.SetStyle(table.StyleDefault)
	return w.Render()
}

// String makes fmt print tables readably.
func (t *Table) String() string { return t.Render() }

// Render draws the frequency table. The one-column form gets a single
// "count" column; the two-column form gets one column per category.
func (ct *CrossTab) Render() string {
	w := table.NewWriter()

	header := table.Row{ct.RowName}
	if ct.ColLabels == nil {
		header = append(header, "count")
	} else {
		for _, label := range ct.ColLabels {
			header = append(header, label)
		}
	}
	w.AppendHeader(header)

	for r, rl := range ct.RowLabels {
		row := table.Row{rl}
		for _, n := range ct.Counts[r] {
			row = append(row, n)
		}
		w.AppendRow(row)
	}

	w.SetStyle(table.StyleDefault)
	return w.Render()
}

func (ct *CrossTab) String() string { return ct.Render() }
