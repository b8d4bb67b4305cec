// transform.go implements the table verbs: Select, Filter, Mutate, GroupBy.
// Every verb returns a new Table and leaves its input untouched, so a
// pipeline is written as plain sequential calls.
package dataplot

import (
	"math"
	"strings"
)

// Select projects the table onto the named columns, preserving row order.
func Select(t *Table, names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return NewTable(cols...)
}

// Row gives a mutate or filter expression access to the current row's cells
// by column name. A reference to an undefined column or a type-mismatched
// read records an EvaluationError and yields a zero value, so expressions
// stay free of error plumbing.
type Row struct {
	t   *Table
	i   int
	err error
}

func (r *Row) fail(col, msg string) {
	if r.err == nil {
		r.err = &EvaluationError{Column: col, Msg: msg}
	}
}

// Float returns the numeric cell in the named column, NaN when the cell is
// missing.
func (r *Row) Float(name string) float64 {
	c, err := r.t.Column(name)
	if err != nil {
		r.fail(name, "undefined column")
		return math.NaN()
	}
	if c.kind != Numeric {
		r.fail(name, "not a numeric column")
		return math.NaN()
	}
	if c.missing[r.i] {
		return math.NaN()
	}
	return c.nums[r.i]
}

// Str returns the text cell in the named column, "" when the cell is
// missing.
func (r *Row) Str(name string) string {
	c, err := r.t.Column(name)
	if err != nil {
		r.fail(name, "undefined column")
		return ""
	}
	if c.kind != Categorical {
		r.fail(name, "not a categorical column")
		return ""
	}
	if c.missing[r.i] {
		return ""
	}
	return c.strs[r.i]
}

// Missing reports whether the named cell holds the missing marker.
func (r *Row) Missing(name string) bool {
	c, err := r.t.Column(name)
	if err != nil {
		r.fail(name, "undefined column")
		return true
	}
	return c.missing[r.i]
}

// Mutate evaluates expr for every row and returns a table with the result
// as a numeric column named name, added or replacing an existing column.
// A NaN result marks the cell missing; infinities propagate as values, the
// usual floating-point semantics.
func Mutate(t *Table, name string, expr func(*Row) float64) (*Table, error) {
	vals := make([]float64, t.Len())
	row := &Row{t: t}
	for i := 0; i < t.Len(); i++ {
		row.i = i
		vals[i] = expr(row)
		if row.err != nil {
			return nil, row.err
		}
	}
	return t.withColumn(NewNumeric(name, vals)), nil
}

// MutateStr is Mutate for expressions producing text values.
func MutateStr(t *Table, name string, expr func(*Row) string) (*Table, error) {
	vals := make([]string, t.Len())
	row := &Row{t: t}
	for i := 0; i < t.Len(); i++ {
		row.i = i
		vals[i] = expr(row)
		if row.err != nil {
			return nil, row.err
		}
	}
	return t.withColumn(NewCategorical(name, vals, nil)), nil
}

// Filter keeps the rows for which pred returns true, preserving order.
func Filter(t *Table, pred func(*Row) bool) (*Table, error) {
	rows := []int{}
	row := &Row{t: t}
	for i := 0; i < t.Len(); i++ {
		row.i = i
		if pred(row) {
			rows = append(rows, i)
		}
		if row.err != nil {
			return nil, row.err
		}
	}
	return t.takeRows(rows), nil
}

// Grouped is a partition of a table's rows keyed by one or more columns.
// Groups are ordered by the first appearance of each distinct key
// combination, and that order is what Summarize emits.
type Grouped struct {
	src    *Table
	keys   []string
	groups [][]int
}

// groupKey encodes the key cells of row i. The missing marker only equals
// itself here, so it gets its own tag distinct from any real value.
func groupKey(cols []*Column, i int) string {
	parts := make([]string, len(cols))
	for k, c := range cols {
		if c.missing[i] {
			parts[k] = "\x01"
		} else {
			parts[k] = "\x02" + c.label(i, "")
		}
	}
	return strings.Join(parts, "\x00")
}

// GroupBy partitions the table by the named key columns. With no keys the
// whole table forms a single group.
func GroupBy(t *Table, keys ...string) (*Grouped, error) {
	cols := make([]*Column, len(keys))
	for i, k := range keys {
		c, err := t.Column(k)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}

	g := &Grouped{src: t, keys: keys}
	if len(keys) == 0 {
		all := make([]int, t.Len())
		for i := range all {
			all[i] = i
		}
		g.groups = [][]int{all}
		return g, nil
	}

	seen := map[string]int{}
	for i := 0; i < t.Len(); i++ {
		key := groupKey(cols, i)
		gi, ok := seen[key]
		if !ok {
			gi = len(g.groups)
			seen[key] = gi
			g.groups = append(g.groups, nil)
		}
		g.groups[gi] = append(g.groups[gi], i)
	}
	return g, nil
}

// Groups returns the number of groups in the partition.
func (g *Grouped) Groups() int { return len(g.groups) }

// Keys returns the group-key column names.
func (g *Grouped) Keys() []string { return append([]string(nil), g.keys...) }

// Table returns the rows of group gi as a table.
func (g *Grouped) Table(gi int) *Table {
	return g.src.takeRows(g.groups[gi])
}
