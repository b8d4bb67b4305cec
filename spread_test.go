package dataplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempTable(t *testing.T) *Table {
	t.Helper()
	tab, err := NewTable(
		NewCategorical("state", []string{"Alabama", "Alabama", "Alaska", "Alaska"}, nil),
		NewCategorical("kind", []string{"high", "low", "high", "low"}, nil),
		NewNumeric("temperature", []float64{122, -27, 100, -80}),
	)
	require.NoError(t, err)
	return tab
}

func TestSpread(t *testing.T) {
	wide, err := Spread(tempTable(t), "kind", "temperature")
	require.NoError(t, err)

	assert.Equal(t, []string{"state", "high", "low"}, wide.Names())
	require.Equal(t, 2, wide.Len())

	high, _ := wide.Column("high")
	v, _ := high.Float(1)
	assert.Equal(t, 100.0, v)
}

func TestSpreadFillsMissingCells(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("state", []string{"Alabama", "Alaska"}, nil),
		NewCategorical("kind", []string{"high", "low"}, nil),
		NewNumeric("temperature", []float64{122, -80}),
	)
	require.NoError(t, err)

	wide, err := Spread(tab, "kind", "temperature")
	require.NoError(t, err)

	low, _ := wide.Column("low")
	assert.True(t, low.IsMissing(0))
	high, _ := wide.Column("high")
	assert.True(t, high.IsMissing(1))
}

func TestSpreadDuplicateCell(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("state", []string{"Alabama", "Alabama"}, nil),
		NewCategorical("kind", []string{"high", "high"}, nil),
		NewNumeric("temperature", []float64{122, 123}),
	)
	require.NoError(t, err)

	_, err = Spread(tab, "kind", "temperature")
	require.Error(t, err)
	assert.IsType(t, &DuplicateKeyError{}, err)
}

func TestGatherSpreadRoundTrip(t *testing.T) {
	wide, err := NewTable(
		NewCategorical("state", []string{"Alabama", "Alaska"}, nil),
		NewNumeric("high", []float64{122, 100}),
		NewNumeric("low", []float64{-27, -80}),
	)
	require.NoError(t, err)

	long, err := Gather(wide, "kind", "temperature", "high", "low")
	require.NoError(t, err)
	assert.Equal(t, 4, long.Len())

	back, err := Spread(long, "kind", "temperature")
	require.NoError(t, err)
	assert.Equal(t, wide.Names(), back.Names())
	require.Equal(t, wide.Len(), back.Len())
	for _, name := range []string{"high", "low"} {
		a, _ := wide.Column(name)
		b, _ := back.Column(name)
		for i := 0; i < a.Len(); i++ {
			va, _ := a.Float(i)
			vb, _ := b.Float(i)
			assert.Equal(t, va, vb)
		}
	}
}
