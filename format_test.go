package dataplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("species", []string{"Adelie", "Gentoo"}, nil),
		NewNumeric("n", []float64{3, 1}),
	)
	require.NoError(t, err)

	assert.Equal(t, `+---------+---+
| SPECIES | N |
+---------+---+
| Adelie  | 3 |
| Gentoo  | 1 |
+---------+---+`, tab.Render())
}

func TestRenderTableMissingCell(t *testing.T) {
	tab, err := NewTable(
		NewCategorical("species", []string{"Adelie", ""}, []bool{false, true}),
	)
	require.NoError(t, err)

	assert.Contains(t, tab.Render(), "NA")
}

func TestRenderCrossTab(t *testing.T) {
	ct, err := NewCrossTab(abTable(t), "a", "b")
	require.NoError(t, err)

	assert.Equal(t, `+---+---+---+
| A | P | Q |
+---+---+---+
| x | 2 | 1 |
| y | 0 | 1 |
+---+---+---+`, ct.Render())
}
