// bins.go
package plot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

type bin struct {
	lo, hi float64
	count  int
}

// computeBins partitions [min(xs), max(xs)] into n equal-width intervals
// and counts the observations falling into each. Intervals are right-closed
// except the leftmost, so every value lands in exactly one bin. NaN entries
// are skipped.
func computeBins(xs []float64, n int) ([]bin, error) {
	if n <= 0 {
		n = DefaultBins
	}
	vals := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			vals = append(vals, x)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("dataplot: histogram has no non-missing values")
	}

	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		// Degenerate range: a single bar holding everything.
		return []bin{{lo: min, hi: max, count: len(vals)}}, nil
	}

	edges := vec.Linspace(min, max, n+1)
	bins := make([]bin, n)
	for i := range bins {
		bins[i] = bin{lo: edges[i], hi: edges[i+1]}
	}

	width := (max - min) / float64(n)
	for _, v := range vals {
		var idx int
		if v == min {
			idx = 0
		} else {
			idx = int(math.Ceil((v-min)/width)) - 1
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		bins[idx].count++
	}
	return bins, nil
}
