package dataplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abTable(t *testing.T) *Table {
	t.Helper()
	tab, err := NewTable(
		NewCategorical("a", []string{"x", "x", "x", "y"}, nil),
		NewCategorical("b", []string{"p", "p", "q", "q"}, nil),
	)
	require.NoError(t, err)
	return tab
}

func TestCrossTabOneColumn(t *testing.T) {
	ct, err := NewCrossTab(abTable(t), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, ct.RowLabels)
	n, ok := ct.Count("x", "")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestCrossTabTwoColumns(t *testing.T) {
	ct, err := NewCrossTab(abTable(t), "a", "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, ct.RowLabels)
	assert.Equal(t, []string{"p", "q"}, ct.ColLabels)

	want := map[[2]string]int{
		{"x", "p"}: 2,
		{"x", "q"}: 1,
		{"y", "p"}: 0,
		{"y", "q"}: 1,
	}
	for pair, expect := range want {
		n, ok := ct.Count(pair[0], pair[1])
		require.True(t, ok)
		assert.Equal(t, expect, n, pair)
	}
}

func TestAddMargins(t *testing.T) {
	ct, err := NewCrossTab(abTable(t), "a", "b")
	require.NoError(t, err)

	withMargins, err := ct.AddMargins()
	require.NoError(t, err)

	n, _ := withMargins.Count("x", MarginLabel)
	assert.Equal(t, 3, n)
	n, _ = withMargins.Count("y", MarginLabel)
	assert.Equal(t, 1, n)
	n, _ = withMargins.Count(MarginLabel, "p")
	assert.Equal(t, 2, n)
	n, _ = withMargins.Count(MarginLabel, "q")
	assert.Equal(t, 2, n)
	n, _ = withMargins.Count(MarginLabel, MarginLabel)
	assert.Equal(t, 4, n)
}

func TestAddMarginsConflict(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("a", []string{"Sum", "x"}, nil),
	)
	require.NoError(t, err)

	ct, err := NewCrossTab(tab, "a")
	require.NoError(t, err)

	_, err = ct.AddMargins()
	require.Error(t, err)
	assert.IsType(t, &ConflictError{}, err)
}

func TestCrossTabSkipsMissing(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("a", []string{"x", "", "x"}, []bool{false, true, false}),
	)
	require.NoError(t, err)

	ct, err := NewCrossTab(tab, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ct.RowLabels)
	n, _ := ct.Count("x", "")
	assert.Equal(t, 2, n)
}
