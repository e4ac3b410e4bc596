package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadOptions holds options for CSV loading.
type LoadOptions struct {
	Delimiter rune     // Field delimiter (default: ',')
	HasHeader bool     // Whether the first row names the columns (default: true)
	SkipRows  int      // Number of rows to skip before the header
	Exclude   []string // Identifier columns to drop while loading
	Missing   []string // Cell tokens treated as missing (default: "", "NA", "NaN", "null", "?")
}

// DefaultLoadOptions returns default options for CSV loading.
func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		Delimiter: ',',
		HasHeader: true,
		Missing:   []string{"", "NA", "NaN", "null", "?"},
	}
}

// LoadCSV loads a dataset from a CSV file.
//
// Column kinds are inferred: a column is numeric when every non-missing cell
// parses as a float, categorical otherwise. Missing cells become NaN in
// numeric columns and "" in categorical ones.
func LoadCSV(filename string, opts *LoadOptions) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a dataset from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *LoadOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset: empty CSV input")
		}
		return nil, err
	}

	var names []string
	var cells [][]string
	if opts.HasHeader {
		names = make([]string, len(first))
		for i, h := range first {
			names[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}
		cells = make([][]string, len(first))
	} else {
		names = make([]string, len(first))
		for i := range first {
			names[i] = fmt.Sprintf("C%d", i+1)
		}
		cells = make([][]string, len(first))
		for i, v := range first {
			cells[i] = append(cells[i], strings.TrimSpace(v))
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != len(names) {
			return nil, fmt.Errorf("dataset: row with %d fields, want %d", len(record), len(names))
		}
		for i, v := range record {
			cells[i] = append(cells[i], strings.TrimSpace(strings.Trim(v, "\"")))
		}
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.New("dataset: no data rows in CSV")
	}

	missing := make(map[string]bool, len(opts.Missing))
	for _, tok := range opts.Missing {
		missing[tok] = true
	}
	if opts.Missing == nil {
		for _, tok := range DefaultLoadOptions().Missing {
			missing[tok] = true
		}
	}
	exclude := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = true
	}

	var cols []Column
	for i, name := range names {
		if exclude[name] {
			continue
		}
		cols = append(cols, inferColumn(name, cells[i], missing))
	}
	if len(cols) == 0 {
		return nil, errors.New("dataset: all columns excluded")
	}
	return New(cols...)
}

// inferColumn decides a column's kind from its raw cells and converts them.
func inferColumn(name string, raw []string, missing map[string]bool) Column {
	numeric := true
	parsed := 0
	for _, v := range raw {
		if missing[v] {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
		parsed++
	}
	if numeric && parsed > 0 {
		floats := make([]float64, len(raw))
		for i, v := range raw {
			if missing[v] {
				floats[i] = math.NaN()
				continue
			}
			floats[i], _ = strconv.ParseFloat(v, 64)
		}
		return Column{Name: name, Kind: Numeric, Floats: floats}
	}
	labels := make([]string, len(raw))
	for i, v := range raw {
		if missing[v] {
			continue
		}
		labels[i] = v
	}
	return Column{Name: name, Kind: Categorical, Labels: labels}
}

// SaveCSV saves a dataset to a CSV file. Missing numeric cells are written
// as empty fields.
func SaveCSV(ds *Dataset, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := WriteCSV(ds, w); err != nil {
		return err
	}
	return w.Flush()
}

// WriteCSV writes a dataset to w in CSV form with a header row.
func WriteCSV(ds *Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Names()); err != nil {
		return err
	}
	record := make([]string, ds.NumColumns())
	for r := 0; r < ds.Len(); r++ {
		for i := range ds.cols {
			c := &ds.cols[i]
			if c.Kind == Numeric {
				v := c.Floats[r]
				if IsMissing(v) {
					record[i] = ""
				} else {
					record[i] = strconv.FormatFloat(v, 'f', -1, 64)
				}
			} else {
				record[i] = c.Labels[r]
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
