package dataplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.bin")

	penguins, err := NewTable(
		NewCategorical("species", []string{"Adelie", "Gentoo"}, nil),
		NewNumeric("mass", []float64{3750, math.NaN()}),
	)
	require.NoError(t, err)
	counts, err := NewTable(NewNumeric("n", []float64{1, 2, 3}))
	require.NoError(t, err)

	require.NoError(t, SaveObjects(path, map[string]*Table{
		"penguins": penguins,
		"counts":   counts,
	}))

	objects, names, err := LoadObjects(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"counts", "penguins"}, names)

	got := objects["penguins"]
	require.NotNil(t, got)
	assert.Equal(t, []string{"species", "mass"}, got.Names())

	mass, _ := got.Column("mass")
	assert.True(t, mass.IsMissing(1))
	v, _ := mass.Float(0)
	assert.Equal(t, 3750.0, v)
}

func TestLoadObjectsMissingFile(t *testing.T) {
	_, _, err := LoadObjects(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
	assert.IsType(t, &IOError{}, err)
}

func TestLoadObjectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0644))

	_, _, err := LoadObjects(path)
	require.Error(t, err)
	assert.IsType(t, &DeserializationError{}, err)
}
