// crosstab.go
package dataplot

import (
	"fmt"
	"sort"
)

// MarginLabel names the total row/column AddMargins appends. A real
// category with this label is a ConflictError.
const MarginLabel = "Sum"

// CrossTab is an ordered frequency table over one or two columns. For the
// one-column form ColLabels is nil and each row holds a single count.
// Missing cells are not counted as a category.
type CrossTab struct {
	RowName   string
	ColName   string
	RowLabels []string
	ColLabels []string
	Counts    [][]int

	withMargins bool
}

// NewCrossTab counts the distinct values of one column, or the value pairs
// of two columns. Dimension labels are sorted.
func NewCrossTab(t *Table, columns ...string) (*CrossTab, error) {
	if len(columns) < 1 || len(columns) > 2 {
		return nil, fmt.Errorf("dataplot: crosstab takes one or two columns, got %d", len(columns))
	}

	rowCol, err := t.Column(columns[0])
	if err != nil {
		return nil, err
	}
	ct := &CrossTab{RowName: columns[0]}

	if len(columns) == 1 {
		counts := map[string]int{}
		for i := 0; i < t.Len(); i++ {
			if rowCol.missing[i] {
				continue
			}
			counts[rowCol.label(i, "")]++
		}
		ct.RowLabels = sortedKeys(counts)
		ct.Counts = make([][]int, len(ct.RowLabels))
		for r, label := range ct.RowLabels {
			ct.Counts[r] = []int{counts[label]}
		}
		return ct, nil
	}

	colCol, err := t.Column(columns[1])
	if err != nil {
		return nil, err
	}
	ct.ColName = columns[1]

	pairCounts := map[[2]string]int{}
	rowSet := map[string]int{}
	colSet := map[string]int{}
	for i := 0; i < t.Len(); i++ {
		if rowCol.missing[i] || colCol.missing[i] {
			continue
		}
		rl := rowCol.label(i, "")
		cl := colCol.label(i, "")
		pairCounts[[2]string{rl, cl}]++
		rowSet[rl]++
		colSet[cl]++
	}
	ct.RowLabels = sortedKeys(rowSet)
	ct.ColLabels = sortedKeys(colSet)

	// Absent combinations count zero, so the grid is always complete.
	ct.Counts = make([][]int, len(ct.RowLabels))
	for r, rl := range ct.RowLabels {
		ct.Counts[r] = make([]int, len(ct.ColLabels))
		for c, cl := range ct.ColLabels {
			ct.Counts[r][c] = pairCounts[[2]string{rl, cl}]
		}
	}
	return ct, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AddMargins returns a copy of the table augmented with a total row and,
// for the two-column form, a total column, labeled MarginLabel.
func (ct *CrossTab) AddMargins() (*CrossTab, error) {
	if ct.withMargins {
		return ct, nil
	}
	for _, label := range ct.RowLabels {
		if label == MarginLabel {
			return nil, &ConflictError{Label: MarginLabel}
		}
	}
	for _, label := range ct.ColLabels {
		if label == MarginLabel {
			return nil, &ConflictError{Label: MarginLabel}
		}
	}

	out := &CrossTab{
		RowName:     ct.RowName,
		ColName:     ct.ColName,
		RowLabels:   append(append([]string{}, ct.RowLabels...), MarginLabel),
		withMargins: true,
	}

	width := 1
	if ct.ColLabels != nil {
		out.ColLabels = append(append([]string{}, ct.ColLabels...), MarginLabel)
		width = len(out.ColLabels)
	}

	out.Counts = make([][]int, len(out.RowLabels))
	colTotals := make([]int, width)
	for r, row := range ct.Counts {
		outRow := make([]int, width)
		rowTotal := 0
		for c, n := range row {
			outRow[c] = n
			rowTotal += n
			colTotals[c] += n
		}
		if ct.ColLabels != nil {
			outRow[width-1] = rowTotal
			colTotals[width-1] += rowTotal
		}
		out.Counts[r] = outRow
	}
	out.Counts[len(out.Counts)-1] = colTotals
	return out, nil
}

// Count looks a cell up by labels. The second result is false for labels
// outside the table.
func (ct *CrossTab) Count(row, col string) (int, bool) {
	r := indexOf(ct.RowLabels, row)
	if r < 0 {
		return 0, false
	}
	if ct.ColLabels == nil {
		return ct.Counts[r][0], true
	}
	c := indexOf(ct.ColLabels, col)
	if c < 0 {
		return 0, false
	}
	return ct.Counts[r][c], true
}

func indexOf(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
