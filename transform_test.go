package dataplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func speciesTable(t *testing.T) *Table {
	t.Helper()
	tab, err := NewTable(
		NewCategorical("species", []string{"A", "A", "B", "A", "B", "C"}, nil),
		NewNumeric("mass", []float64{2, 4, 10, math.NaN(), 20, 7}),
	)
	require.NoError(t, err)
	return tab
}

func TestSelect(t *testing.T) {
	tab := speciesTable(t)

	out, err := Select(tab, "mass")
	require.NoError(t, err)
	assert.Equal(t, []string{"mass"}, out.Names())
	assert.Equal(t, tab.Len(), out.Len())

	_, err = Select(tab, "mass", "height")
	assert.IsType(t, &ColumnNotFoundError{}, err)
}

func TestMutate(t *testing.T) {
	tab := speciesTable(t)

	out, err := Mutate(tab, "mass_kg", func(r *Row) float64 {
		return r.Float("mass") / 1000
	})
	require.NoError(t, err)

	kg, err := out.Column("mass_kg")
	require.NoError(t, err)
	v, ok := kg.Float(0)
	assert.True(t, ok)
	assert.Equal(t, 0.002, v)

	// Missing input propagates to a missing output cell.
	assert.True(t, kg.IsMissing(3))

	// The input table is untouched.
	assert.False(t, tab.Has("mass_kg"))
}

func TestMutateReplacesColumn(t *testing.T) {
	tab := speciesTable(t)

	out, err := Mutate(tab, "mass", func(r *Row) float64 {
		return r.Float("mass") * 2
	})
	require.NoError(t, err)
	assert.Equal(t, tab.Names(), out.Names())

	mass, _ := out.Column("mass")
	v, _ := mass.Float(0)
	assert.Equal(t, 4.0, v)
}

func TestMutateUndefinedColumn(t *testing.T) {
	tab := speciesTable(t)

	_, err := Mutate(tab, "x", func(r *Row) float64 {
		return r.Float("height")
	})
	require.Error(t, err)
	assert.IsType(t, &EvaluationError{}, err)
}

func TestMutateDivisionByZeroIsNotAnError(t *testing.T) {
	tab, err := NewTable(NewNumeric("x", []float64{1, 0}))
	require.NoError(t, err)

	out, err := Mutate(tab, "inv", func(r *Row) float64 {
		return 1 / r.Float("x")
	})
	require.NoError(t, err)

	inv, _ := out.Column("inv")
	v, ok := inv.Float(1)
	assert.True(t, ok)
	assert.True(t, math.IsInf(v, 1))
}

func TestFilter(t *testing.T) {
	tab := speciesTable(t)

	out, err := Filter(tab, func(r *Row) bool {
		return r.Str("species") == "A"
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Len())
}

func TestGroupByFirstAppearanceOrder(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("species", []string{"A", "A", "B", "A", "B", "C"}, nil),
	)
	require.NoError(t, err)

	g, err := GroupBy(tab, "species")
	require.NoError(t, err)
	require.Equal(t, 3, g.Groups())

	out, err := g.Summarize(Count("n"))
	require.NoError(t, err)

	species, _ := out.Column("species")
	n, _ := out.Column("n")
	wantSpecies := []string{"A", "B", "C"}
	wantN := []float64{3, 2, 1}
	for i := 0; i < out.Len(); i++ {
		s, _ := species.Str(i)
		assert.Equal(t, wantSpecies[i], s)
		v, _ := n.Float(i)
		assert.Equal(t, wantN[i], v)
	}
}

func TestGroupByMissingKeyIsItsOwnGroup(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("k", []string{"a", "", "a", ""}, []bool{false, true, false, true}),
	)
	require.NoError(t, err)

	g, err := GroupBy(tab, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Groups())
}

func TestGroupByUnknownColumn(t *testing.T) {
	tab := speciesTable(t)
	_, err := GroupBy(tab, "height")
	assert.IsType(t, &ColumnNotFoundError{}, err)
}
