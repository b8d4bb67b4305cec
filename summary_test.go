package dataplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("species", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, nil),
		NewNumeric("x", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
		NewNumeric("y", []float64{1, math.NaN(), 3, math.NaN(), 5, 6, 7, 8, 9, 10}),
	)
	require.NoError(t, err)

	out, err := Summary(tab)
	require.NoError(t, err)

	// One row per numeric column; the categorical column is skipped.
	require.Equal(t, 2, out.Len())
	column, _ := out.Column("column")
	first, _ := column.Str(0)
	assert.Equal(t, "x", first)

	count, _ := out.Column("count")
	n, _ := count.Float(1)
	assert.Equal(t, 8.0, n)

	median, _ := out.Column("median")
	m, _ := median.Float(0)
	assert.Equal(t, 5.5, m)

	q25, _ := out.Column("q25")
	q, _ := q25.Float(0)
	assert.Equal(t, 3.25, q)
}
