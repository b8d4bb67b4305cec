package dataplot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFromRows(t *testing.T) {
	when := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []map[string]interface{}{
		{"n": int64(10), "name": "alpha", "at": when},
		{"n": int64(20), "name": "beta", "at": when.Add(time.Hour)},
		{"n": nil, "name": nil, "at": when},
	}

	tab, err := tableFromRows(rows)
	require.NoError(t, err)

	// Columns come out in sorted name order.
	assert.Equal(t, []string{"at", "n", "name"}, tab.Names())

	n, _ := tab.Column("n")
	assert.Equal(t, Numeric, n.Kind())
	assert.True(t, n.IsMissing(2))
	v, _ := n.Float(1)
	assert.Equal(t, 20.0, v)

	at, _ := tab.Column("at")
	assert.Equal(t, Numeric, at.Kind())
	ts, _ := at.Float(0)
	assert.Equal(t, float64(when.Unix()), ts)

	name, _ := tab.Column("name")
	assert.Equal(t, Categorical, name.Kind())
	assert.True(t, name.IsMissing(2))
}

func TestTableFromRowsMixedTypesFallBackToText(t *testing.T) {
	rows := []map[string]interface{}{
		{"v": int64(1)},
		{"v": "two"},
	}
	tab, err := tableFromRows(rows)
	require.NoError(t, err)

	v, _ := tab.Column("v")
	assert.Equal(t, Categorical, v.Kind())
	s, _ := v.Str(0)
	assert.Equal(t, "1", s)
}
