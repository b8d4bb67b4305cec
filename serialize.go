// serialize.go reads and writes object files: a binary container holding
// one or more named tables, the workspace-image equivalent of the delimited
// loaders. The format is gob and is only promised to round-trip through the
// same library version.
package dataplot

import (
	"encoding/gob"
	"os"
	"sort"
)

type columnWire struct {
	Name    string
	Kind    int
	Nums    []float64
	Strs    []string
	Missing []bool
}

type objectWire struct {
	Objects map[string][]columnWire
}

// SaveObjects writes the named tables to a single binary file at path.
func SaveObjects(path string, objects map[string]*Table) error {
	wire := objectWire{Objects: map[string][]columnWire{}}
	for name, t := range objects {
		cols := make([]columnWire, len(t.cols))
		for i, c := range t.cols {
			cols[i] = columnWire{
				Name:    c.name,
				Kind:    int(c.kind),
				Nums:    c.nums,
				Strs:    c.strs,
				Missing: c.missing,
			}
		}
		wire.Objects[name] = cols
	}

	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(wire); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// LoadObjects reads every named table from an object file and reports the
// names loaded, sorted. The file handle is released before returning on
// both paths.
func LoadObjects(path string) (map[string]*Table, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	var wire objectWire
	if err := gob.NewDecoder(f).Decode(&wire); err != nil {
		return nil, nil, &DeserializationError{Path: path, Err: err}
	}

	objects := map[string]*Table{}
	names := []string{}
	for name, wireCols := range wire.Objects {
		cols := make([]*Column, len(wireCols))
		for i, wc := range wireCols {
			missing := wc.Missing
			if missing == nil {
				missing = make([]bool, maxLen(len(wc.Nums), len(wc.Strs)))
			}
			cols[i] = &Column{
				name:    wc.Name,
				kind:    Kind(wc.Kind),
				nums:    wc.Nums,
				strs:    wc.Strs,
				missing: missing,
			}
		}
		t, err := NewTable(cols...)
		if err != nil {
			return nil, nil, &DeserializationError{Path: path, Err: err}
		}
		objects[name] = t
		names = append(names, name)
	}
	sort.Strings(names)
	return objects, names, nil
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}
