// table.go
package dataplot

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tells whether a column holds numbers or text labels.
type Kind int

const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// Column is a named, typed sequence of values with a per-cell missing flag.
// A numeric column keeps its texts slice nil and vice versa; missing numeric
// cells additionally hold NaN so arithmetic propagates naturally.
type Column struct {
	name    string
	kind    Kind
	nums    []float64
	strs    []string
	missing []bool
}

// NewNumeric builds a numeric column. NaN values are treated as missing.
func NewNumeric(name string, values []float64) *Column {
	c := &Column{
		name:    name,
		kind:    Numeric,
		nums:    append([]float64(nil), values...),
		missing: make([]bool, len(values)),
	}
	for i, v := range values {
		if math.IsNaN(v) {
			c.missing[i] = true
		}
	}
	return c
}

// NewCategorical builds a text column. The missing slice may be nil when no
// cell is missing.
func NewCategorical(name string, values []string, missing []bool) *Column {
	c := &Column{
		name:    name,
		kind:    Categorical,
		strs:    append([]string(nil), values...),
		missing: make([]bool, len(values)),
	}
	copy(c.missing, missing)
	return c
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }
func (c *Column) Len() int     { return len(c.missing) }

// IsMissing reports whether the cell at row i holds the missing marker.
func (c *Column) IsMissing(i int) bool { return c.missing[i] }

// Float returns the numeric value at row i. The second result is false for
// missing cells and for categorical columns.
func (c *Column) Float(i int) (float64, bool) {
	if c.kind != Numeric || c.missing[i] {
		return math.NaN(), false
	}
	return c.nums[i], true
}

// Str returns the text value at row i. The second result is false for
// missing cells and for numeric columns.
func (c *Column) Str(i int) (string, bool) {
	if c.kind != Categorical || c.missing[i] {
		return "", false
	}
	return c.strs[i], true
}

// label formats the cell at row i for display and for grouping keys.
func (c *Column) label(i int, missingToken string) string {
	if c.missing[i] {
		return missingToken
	}
	if c.kind == Numeric {
		return strconv.FormatFloat(c.nums[i], 'g', -1, 64)
	}
	return c.strs[i]
}

// take builds a new column holding the cells at the given row indices.
func (c *Column) take(rows []int) *Column {
	out := &Column{name: c.name, kind: c.kind, missing: make([]bool, len(rows))}
	if c.kind == Numeric {
		out.nums = make([]float64, len(rows))
	} else {
		out.strs = make([]string, len(rows))
	}
	for i, r := range rows {
		out.missing[i] = c.missing[r]
		if c.kind == Numeric {
			out.nums[i] = c.nums[r]
		} else {
			out.strs[i] = c.strs[r]
		}
	}
	return out
}

func (c *Column) rename(name string) *Column {
	out := *c
	out.name = name
	return &out
}

// Table is an ordered set of equal-length columns with unique names. Tables
// are immutable by convention: every transform returns a new Table and
// shares column storage with its input where it can.
type Table struct {
	cols  []*Column
	index map[string]int
}

// NewTable assembles a table from columns, checking the two invariants:
// equal lengths and unique names.
func NewTable(cols ...*Column) (*Table, error) {
	t := &Table{index: map[string]int{}}
	for _, c := range cols {
		if len(t.cols) > 0 && c.Len() != t.cols[0].Len() {
			return nil, fmt.Errorf("dataplot: column %q has %d rows, want %d", c.name, c.Len(), t.cols[0].Len())
		}
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("dataplot: duplicate column name %q", c.name)
		}
		t.index[c.name] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// mustTable is for columns already known to satisfy the invariants.
func mustTable(cols ...*Column) *Table {
	t, err := NewTable(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the row count.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &ColumnNotFoundError{Column: name}
	}
	return t.cols[i], nil
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Head returns a table with the first n rows (all rows when n exceeds the
// row count).
func (t *Table) Head(n int) *Table {
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.takeRows(rows)
}

func (t *Table) takeRows(rows []int) *Table {
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.take(rows)
	}
	return mustTable(cols...)
}

// withColumn returns a table with col added, or replacing an existing column
// of the same name in place.
func (t *Table) withColumn(col *Column) *Table {
	cols := append([]*Column(nil), t.cols...)
	if i, ok := t.index[col.name]; ok {
		cols[i] = col
	} else {
		cols = append(cols, col)
	}
	return mustTable(cols...)
}
