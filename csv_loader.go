// csv_loader.go
package dataplot

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"github.com/pivolan/dataplot/config"
)

type csvOptions struct {
	delimiter    rune
	missingToken string
}

// CSVOption adjusts how LoadCSV and ReadCSV parse their input.
type CSVOption func(*csvOptions)

// Delimiter sets the field delimiter, comma by default.
func Delimiter(r rune) CSVOption {
	return func(o *csvOptions) { o.delimiter = r }
}

// MissingToken sets the field text that maps to the missing marker. The
// default comes from config (normally the empty string).
func MissingToken(s string) CSVOption {
	return func(o *csvOptions) { o.missingToken = s }
}

// LoadCSV reads a delimited text file into a table. The first line is the
// header; each column's kind is inferred from its values. Files ending in
// .zip, .gz or .lz4 are unpacked to a temporary file first.
func LoadCSV(path string, opts ...CSVOption) (*Table, error) {
	unpacked, err := unpackArchive(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if unpacked != "" {
		defer os.Remove(unpacked)
		path = unpacked
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := readCSV(f, path, opts)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ReadCSV parses delimited text from r with the same rules as LoadCSV.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	return readCSV(r, "<reader>", opts)
}

func readCSV(src io.Reader, path string, opts []CSVOption) (*Table, error) {
	o := csvOptions{delimiter: ',', missingToken: config.GetConfig().MissingToken}
	for _, opt := range opts {
		opt(&o)
	}

	r := csv.NewReader(src)
	r.Comma = o.delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // field counts are checked below, with row numbers

	records, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}
	if len(records) == 0 {
		return nil, &ParseError{Path: path, Msg: "empty input"}
	}

	header := analyzeHeader(records[0])
	rows := records[1:]
	if header.firstRowIsData {
		rows = records
	}
	for i, row := range rows {
		if len(row) != len(header.names) {
			return nil, &ParseError{
				Path: path,
				Row:  i + 1,
				Msg:  "has " + strconv.Itoa(len(row)) + " fields, header has " + strconv.Itoa(len(header.names)),
			}
		}
	}

	cols := make([]*Column, len(header.names))
	for j, name := range header.names {
		cols[j] = inferColumn(name, rows, j, o.missingToken)
	}
	return NewTable(cols...)
}

// inferColumn applies the type-inference rule: a column is numeric iff every
// non-missing field parses as a float, otherwise it is categorical.
func inferColumn(name string, rows [][]string, j int, missingToken string) *Column {
	numeric := true
	missing := make([]bool, len(rows))
	for i, row := range rows {
		field := strings.TrimSpace(row[j])
		if field == missingToken {
			missing[i] = true
			continue
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			numeric = false
		}
	}

	if numeric {
		nums := make([]float64, len(rows))
		for i, row := range rows {
			if missing[i] {
				nums[i] = math.NaN()
				continue
			}
			nums[i], _ = strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
		}
		return NewNumeric(name, nums)
	}

	strs := make([]string, len(rows))
	for i, row := range rows {
		if !missing[i] {
			strs[i] = strings.TrimSpace(row[j])
		}
	}
	return NewCategorical(name, strs, missing)
}

type headerAnalysis struct {
	names          []string
	firstRowIsData bool
}

// analyzeHeader decides whether the first row is a real header and produces
// clean, unique column names. When most fields look like data, names are
// synthesized and the row is kept as data.
func analyzeHeader(firstRow []string) headerAnalysis {
	headerLike := 0
	for _, field := range firstRow {
		if isLikelyHeader(field) {
			headerLike++
		}
	}
	h := headerAnalysis{names: make([]string, len(firstRow))}
	if float64(headerLike)/float64(len(firstRow)) >= 0.5 {
		for i, field := range firstRow {
			h.names[i] = cleanHeaderName(field, i)
		}
	} else {
		h.firstRowIsData = true
		for i := range firstRow {
			h.names[i] = generateColumnName(i)
		}
	}
	h.names = dedupeNames(h.names)
	return h
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}(\.\d+)?$`),
}

// isLikelyHeader reports whether text reads as a column name rather than a
// data value: not a number, not a date, and mostly letters.
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}
	for _, p := range datePatterns {
		if p.MatchString(text) {
			return false
		}
	}

	letters, total := 0, 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
			total++
		case unicode.IsSpace(r):
		default:
			total++
		}
	}
	if total == 0 {
		return false
	}
	return letters > 0 && float64(letters)/float64(total) >= 0.3
}

func generateColumnName(index int) string {
	return "column_" + strconv.Itoa(index+1)
}

var nonAlnum = regexp.MustCompile("[^a-zA-Z0-9]+")

// cleanHeaderName transliterates the raw header to ASCII, squashes special
// symbols to underscores and lowercases the result. Empty or data-looking
// headers fall back to a generated name.
func cleanHeaderName(header string, index int) string {
	header = strings.TrimSpace(header)
	if header == "" || !isLikelyHeader(header) {
		return generateColumnName(index)
	}
	cleaned := unidecode.Unidecode(header)
	cleaned = nonAlnum.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return generateColumnName(index)
	}
	return strings.ToLower(cleaned)
}

// dedupeNames suffixes repeated names with a counter so names stay unique.
func dedupeNames(names []string) []string {
	seen := map[string]bool{}
	result := make([]string, len(names))
	for i, name := range names {
		candidate := name
		for counter := 1; seen[candidate]; counter++ {
			candidate = name + "_" + strconv.Itoa(counter)
		}
		seen[candidate] = true
		result[i] = candidate
	}
	return result
}

// WriteCSV serializes the table back to delimited text, mapping missing
// cells to the missing token. A LoadCSV of the output reproduces the table.
func WriteCSV(t *Table, w io.Writer, opts ...CSVOption) error {
	o := csvOptions{delimiter: ',', missingToken: config.GetConfig().MissingToken}
	for _, opt := range opts {
		opt(&o)
	}

	cw := csv.NewWriter(w)
	cw.Comma = o.delimiter
	if err := cw.Write(t.Names()); err != nil {
		return err
	}
	record := make([]string, len(t.cols))
	for i := 0; i < t.Len(); i++ {
		for j, c := range t.cols {
			record[j] = c.label(i, o.missingToken)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to a file at path.
func SaveCSV(t *Table, path string, opts ...CSVOption) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer f.Close()
	if err := WriteCSV(t, f, opts...); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
