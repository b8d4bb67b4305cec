// box.go
package plot

import (
	"fmt"
	"math"

	"github.com/pivolan/dataplot"
)

type boxStats struct {
	q1, median, q3       float64
	whiskerLo, whiskerHi float64
	outliers             []float64
}

// computeBox summarizes xs into quartiles, 1.5*IQR whiskers clamped to the
// data, and the points beyond the fences. NaN entries are skipped.
func computeBox(xs []float64) (boxStats, error) {
	vals := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			vals = append(vals, x)
		}
	}
	if len(vals) == 0 {
		return boxStats{}, fmt.Errorf("dataplot: boxplot has no non-missing values")
	}

	q1 := dataplot.Quantile(vals, 0.25)
	q3 := dataplot.Quantile(vals, 0.75)
	iqr := q3 - q1

	// Whiskers run to the most extreme values still inside the fences.
	loFence, hiFence := q1-1.5*iqr, q3+1.5*iqr
	whiskerLo, whiskerHi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v >= loFence && v < whiskerLo {
			whiskerLo = v
		}
		if v <= hiFence && v > whiskerHi {
			whiskerHi = v
		}
	}

	return boxStats{
		q1:        q1,
		median:    dataplot.Quantile(vals, 0.5),
		q3:        q3,
		whiskerLo: whiskerLo,
		whiskerHi: whiskerHi,
		outliers:  dataplot.Outliers(vals, q1, q3),
	}, nil
}
