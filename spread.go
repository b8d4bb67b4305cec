// spread.go implements the long/wide pivots: Spread turns one key/value
// column pair into one column per key label, Gather is its inverse.
package dataplot

import (
	"fmt"
	"math"
	"strings"
)

// Spread pivots long-format rows into wide format. Rows that agree on every
// column except key and value collapse to one output row; each distinct key
// label becomes an output column populated from value. Cells with no source
// row are missing. More than one source row per output cell is a
// DuplicateKeyError.
func Spread(t *Table, key, value string) (*Table, error) {
	keyCol, err := t.Column(key)
	if err != nil {
		return nil, err
	}
	if keyCol.kind != Categorical {
		return nil, fmt.Errorf("dataplot: spread key %q must be categorical", key)
	}
	valCol, err := t.Column(value)
	if err != nil {
		return nil, err
	}

	idCols := []*Column{}
	for _, c := range t.cols {
		if c.name != key && c.name != value {
			idCols = append(idCols, c)
		}
	}

	// Row groups and key labels both keep first-appearance order.
	groupOf := map[string]int{}
	groupRows := [][]int{} // one representative source row per group is enough
	colOf := map[string]int{}
	colLabels := []string{}
	type cellRef struct {
		group, col int
	}
	filled := map[cellRef]int{} // output cell -> source row

	for i := 0; i < t.Len(); i++ {
		gkey := groupKey(idCols, i)
		gi, ok := groupOf[gkey]
		if !ok {
			gi = len(groupRows)
			groupOf[gkey] = gi
			groupRows = append(groupRows, nil)
		}
		groupRows[gi] = append(groupRows[gi], i)

		label := keyCol.label(i, "<missing>")
		ci, ok := colOf[label]
		if !ok {
			ci = len(colLabels)
			colOf[label] = ci
			colLabels = append(colLabels, label)
		}

		ref := cellRef{gi, ci}
		if _, dup := filled[ref]; dup {
			ids := make([]string, len(idCols))
			for k, c := range idCols {
				ids[k] = c.name + "=" + c.label(i, "<missing>")
			}
			return nil, &DuplicateKeyError{Key: label, Group: "(" + strings.Join(ids, ", ") + ")"}
		}
		filled[ref] = i
	}

	firstRows := make([]int, len(groupRows))
	for gi, rows := range groupRows {
		firstRows[gi] = rows[0]
	}

	out := make([]*Column, 0, len(idCols)+len(colLabels))
	for _, c := range idCols {
		out = append(out, c.take(firstRows))
	}
	for ci, label := range colLabels {
		col := &Column{name: label, kind: valCol.kind, missing: make([]bool, len(groupRows))}
		if valCol.kind == Numeric {
			col.nums = make([]float64, len(groupRows))
		} else {
			col.strs = make([]string, len(groupRows))
		}
		for gi := range groupRows {
			src, ok := filled[cellRef{gi, ci}]
			if !ok || valCol.missing[src] {
				col.missing[gi] = true
				if valCol.kind == Numeric {
					col.nums[gi] = math.NaN()
				}
				continue
			}
			if valCol.kind == Numeric {
				col.nums[gi] = valCol.nums[src]
			} else {
				col.strs[gi] = valCol.strs[src]
			}
		}
		out = append(out, col)
	}
	return NewTable(out...)
}

// Gather unpivots the named wide columns into long format: one output row
// per input row and gathered column, with the column name under key and the
// cell under value. The gathered columns must share one kind.
func Gather(t *Table, key, value string, columns ...string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataplot: gather needs at least one column")
	}
	gathered := make([]*Column, len(columns))
	for i, name := range columns {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if i > 0 && c.kind != gathered[0].kind {
			return nil, fmt.Errorf("dataplot: gather columns mix numeric and categorical")
		}
		gathered[i] = c
	}

	isGathered := map[string]bool{}
	for _, name := range columns {
		isGathered[name] = true
	}

	n := t.Len() * len(columns)
	idRows := make([]int, 0, n)
	keyVals := make([]string, 0, n)
	valKind := gathered[0].kind
	valNums := []float64{}
	valStrs := []string{}
	valMissing := make([]bool, 0, n)

	for i := 0; i < t.Len(); i++ {
		for _, c := range gathered {
			idRows = append(idRows, i)
			keyVals = append(keyVals, c.name)
			valMissing = append(valMissing, c.missing[i])
			if valKind == Numeric {
				valNums = append(valNums, c.nums[i])
			} else {
				valStrs = append(valStrs, c.strs[i])
			}
		}
	}

	out := []*Column{}
	for _, c := range t.cols {
		if !isGathered[c.name] {
			out = append(out, c.take(idRows))
		}
	}
	out = append(out, NewCategorical(key, keyVals, nil))
	valCol := &Column{name: value, kind: valKind, missing: valMissing}
	if valKind == Numeric {
		valCol.nums = valNums
	} else {
		valCol.strs = valStrs
	}
	out = append(out, valCol)
	return NewTable(out...)
}
