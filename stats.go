// stats.go
package dataplot

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile of xs using inclusive linear interpolation
// at position p*(n-1), the same convention spreadsheet QUARTILE and most
// statistics packages use. xs need not be sorted; NaN entries are skipped.
func Quantile(xs []float64, p float64) float64 {
	sorted := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			sorted = append(sorted, x)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)
	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	return lower + (pos-floor)*(upper-lower)
}

// Outliers returns the values outside the 1.5*IQR whisker fences.
func Outliers(xs []float64, q1, q3 float64) []float64 {
	iqr := q3 - q1
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	outliers := []float64{}
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x < lowerBound || x > upperBound {
			outliers = append(outliers, x)
		}
	}
	return outliers
}
