// summary.go
package dataplot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Summary computes per-column statistics for every numeric column of the
// table: non-missing count, mean, min, quartiles and max, missing cells
// ignored. The result has one row per numeric column.
func Summary(t *Table) (*Table, error) {
	names := []string{}
	count := []float64{}
	mean := []float64{}
	min := []float64{}
	q25 := []float64{}
	median := []float64{}
	q75 := []float64{}
	max := []float64{}

	for _, c := range t.cols {
		if c.kind != Numeric {
			continue
		}
		vals := make([]float64, 0, c.Len())
		for i := 0; i < c.Len(); i++ {
			if !c.missing[i] {
				vals = append(vals, c.nums[i])
			}
		}

		names = append(names, c.name)
		count = append(count, float64(len(vals)))
		if len(vals) == 0 {
			nan := math.NaN()
			mean = append(mean, nan)
			min = append(min, nan)
			q25 = append(q25, nan)
			median = append(median, nan)
			q75 = append(q75, nan)
			max = append(max, nan)
			continue
		}
		mean = append(mean, stats.Mean(vals))
		min = append(min, Quantile(vals, 0))
		q25 = append(q25, Quantile(vals, 0.25))
		median = append(median, Quantile(vals, 0.5))
		q75 = append(q75, Quantile(vals, 0.75))
		max = append(max, Quantile(vals, 1))
	}

	return NewTable(
		NewCategorical("column", names, nil),
		NewNumeric("count", count),
		NewNumeric("mean", mean),
		NewNumeric("min", min),
		NewNumeric("q25", q25),
		NewNumeric("median", median),
		NewNumeric("q75", q75),
		NewNumeric("max", max),
	)
}
