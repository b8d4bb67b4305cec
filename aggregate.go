// aggregate.go
package dataplot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/pivolan/go_utils"
)

// AggKind names an aggregation function.
type AggKind string

const (
	AggCount  AggKind = "count"
	AggSum    AggKind = "sum"
	AggMean   AggKind = "mean"
	AggMin    AggKind = "min"
	AggMax    AggKind = "max"
	AggMedian AggKind = "median"
)

var aggKinds = []string{"count", "sum", "mean", "min", "max", "median"}

// Aggregation maps an output column name to an aggregation function applied
// to one input column per group. Count needs no input column. When
// IgnoreMissing is set, missing cells are dropped before aggregating;
// otherwise a single missing input makes the result missing.
type Aggregation struct {
	Name          string
	Column        string
	Kind          AggKind
	IgnoreMissing bool
}

// IgnoringMissing returns a copy of the aggregation that drops missing
// cells instead of propagating them.
func (a Aggregation) IgnoringMissing() Aggregation {
	a.IgnoreMissing = true
	return a
}

// Count counts the rows of each group, missing cells included.
func Count(name string) Aggregation {
	return Aggregation{Name: name, Kind: AggCount}
}

func Sum(name, column string) Aggregation {
	return Aggregation{Name: name, Column: column, Kind: AggSum}
}

func Mean(name, column string) Aggregation {
	return Aggregation{Name: name, Column: column, Kind: AggMean}
}

func Min(name, column string) Aggregation {
	return Aggregation{Name: name, Column: column, Kind: AggMin}
}

func Max(name, column string) Aggregation {
	return Aggregation{Name: name, Column: column, Kind: AggMax}
}

func Median(name, column string) Aggregation {
	return Aggregation{Name: name, Column: column, Kind: AggMedian}
}

// apply reduces the column cells at rows to one value. The bool result is
// true when the result is the missing marker.
func (a Aggregation) apply(t *Table, rows []int) (float64, bool, error) {
	if !go_utils.InArray(string(a.Kind), aggKinds) {
		return 0, false, fmt.Errorf("dataplot: unknown aggregation %q", a.Kind)
	}
	if a.Kind == AggCount {
		return float64(len(rows)), false, nil
	}

	c, err := t.Column(a.Column)
	if err != nil {
		return 0, false, err
	}
	if c.kind != Numeric {
		return 0, false, fmt.Errorf("dataplot: aggregation %s needs numeric column, %q is %s", a.Kind, a.Column, c.kind)
	}

	vals := make([]float64, 0, len(rows))
	anyMissing := false
	for _, r := range rows {
		if c.missing[r] {
			anyMissing = true
			continue
		}
		vals = append(vals, c.nums[r])
	}
	if anyMissing && !a.IgnoreMissing {
		return math.NaN(), true, nil
	}
	if len(vals) == 0 {
		return math.NaN(), true, nil
	}

	switch a.Kind {
	case AggSum:
		return vec.Sum(vals), false, nil
	case AggMean:
		return stats.Mean(vals), false, nil
	case AggMin:
		min := vals[0]
		for _, v := range vals[1:] {
			if v < min {
				min = v
			}
		}
		return min, false, nil
	case AggMax:
		max := vals[0]
		for _, v := range vals[1:] {
			if v > max {
				max = v
			}
		}
		return max, false, nil
	default: // AggMedian
		return Quantile(vals, 0.5), false, nil
	}
}

// Summarize reduces every group to one output row holding the group-key
// cells plus one column per aggregation, in group first-appearance order.
func (g *Grouped) Summarize(aggs ...Aggregation) (*Table, error) {
	firstRows := make([]int, len(g.groups))
	for i, rows := range g.groups {
		if len(rows) > 0 {
			firstRows[i] = rows[0]
		}
	}

	cols := make([]*Column, 0, len(g.keys)+len(aggs))
	for _, key := range g.keys {
		src, err := g.src.Column(key)
		if err != nil {
			return nil, err
		}
		cols = append(cols, src.take(firstRows))
	}

	for _, a := range aggs {
		vals := make([]float64, len(g.groups))
		for gi, rows := range g.groups {
			v, miss, err := a.apply(g.src, rows)
			if err != nil {
				return nil, err
			}
			if miss {
				v = math.NaN()
			}
			vals[gi] = v
		}
		cols = append(cols, NewNumeric(a.Name, vals))
	}
	return NewTable(cols...)
}

// Summarize over an ungrouped table behaves like a GroupBy with no keys:
// exactly one output row.
func Summarize(t *Table, aggs ...Aggregation) (*Table, error) {
	g, err := GroupBy(t)
	if err != nil {
		return nil, err
	}
	return g.Summarize(aggs...)
}
