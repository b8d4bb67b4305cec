package dataplot

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "data.csv", "species,mass\nAdelie,3750\nGentoo,\nChinstrap,3800\n")

	tab, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"species", "mass"}, tab.Names())
	assert.Equal(t, 3, tab.Len())

	mass, err := tab.Column("mass")
	require.NoError(t, err)
	assert.Equal(t, Numeric, mass.Kind())
	assert.True(t, mass.IsMissing(1))

	species, err := tab.Column("species")
	require.NoError(t, err)
	assert.Equal(t, Categorical, species.Kind())
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.IsType(t, &IOError{}, err)
}

func TestLoadCSVRaggedRow(t *testing.T) {
	path := writeTempCSV(t, "bad.csv", "a,b\n1,2\n3\n")

	_, err := LoadCSV(path)
	require.Error(t, err)
	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, 2, parseErr.Row)
}

func TestLoadCSVCustomDelimiterAndMissingToken(t *testing.T) {
	path := writeTempCSV(t, "data.tsv", "a\tb\n1\tNA\n2\t5\n")

	tab, err := LoadCSV(path, Delimiter('\t'), MissingToken("NA"))
	require.NoError(t, err)

	b, err := tab.Column("b")
	require.NoError(t, err)
	assert.Equal(t, Numeric, b.Kind())
	assert.True(t, b.IsMissing(0))
}

func TestTypeInferenceMixedColumnIsCategorical(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("v\n1\ntwo\n3\n"))
	require.NoError(t, err)

	v, err := tab.Column("v")
	require.NoError(t, err)
	assert.Equal(t, Categorical, v.Kind())
}

func TestHeaderCleaning(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("Bill Length (mm),Bill Length (mm)\n39.1,18.7\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"bill_length_mm", "bill_length_mm_1"}, tab.Names())
}

func TestHeaderlessFirstRowKeptAsData(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader("1,2\n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"column_1", "column_2"}, tab.Names())
	assert.Equal(t, 2, tab.Len())
}

func TestCSVRoundTrip(t *testing.T) {
	original, err := ReadCSV(strings.NewReader("species,mass\nAdelie,3750\nGentoo,\n"))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteCSV(original, buf))

	reloaded, err := ReadCSV(buf)
	require.NoError(t, err)

	assert.Equal(t, original.Names(), reloaded.Names())
	require.Equal(t, original.Len(), reloaded.Len())
	for _, name := range original.Names() {
		a, _ := original.Column(name)
		b, _ := reloaded.Column(name)
		assert.Equal(t, a.Kind(), b.Kind())
		for i := 0; i < a.Len(); i++ {
			assert.Equal(t, a.IsMissing(i), b.IsMissing(i))
			if va, ok := a.Float(i); ok {
				vb, _ := b.Float(i)
				assert.Equal(t, va, vb)
			}
			if sa, ok := a.Str(i); ok {
				sb, _ := b.Str(i)
				assert.Equal(t, sa, sb)
			}
		}
	}
}

func TestLoadCSVGzip(t *testing.T) {
	buf := &bytes.Buffer{}
	gw := gzip.NewWriter(buf)
	_, err := gw.Write([]byte("a,b\n1,x\n2,y\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	path := filepath.Join(t.TempDir(), "data.csv.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	tab, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Len())

	// The compressed source stays in place.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
