package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"childstat/internal/errors"
)

// IndicatorColumns are the columns every UNICEF indicator file must carry
var IndicatorColumns = []string{"country", "alpha_3_code", "obs_value"}

// LoadCSV reads a delimited file with a header row into a Table. Rows
// shorter than the header are padded with empty cells so ragged exports
// still load; longer rows are truncated to the header width.
func LoadCSV(path, name string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewLoadError(fmt.Sprintf("dataset file not found: %s", path), err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to parse %s", path), err)
	}
	if len(records) == 0 {
		return nil, errors.NewLoadError(fmt.Sprintf("file %s has no header row", path), nil)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{
		Name:    name,
		Columns: header,
		Rows:    make([][]string, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make([]string, len(header))
		copy(row, record)
		table.Rows = append(table.Rows, row)
	}

	slog.Info("loaded dataset",
		slog.String("table", name),
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))

	return table, nil
}

// LoadIndicator reads an indicator CSV and validates that the required
// indicator columns are present.
func LoadIndicator(path, name string) (*Table, error) {
	table, err := LoadCSV(path, name)
	if err != nil {
		return nil, err
	}
	for _, col := range IndicatorColumns {
		if !table.HasColumn(col) {
			return nil, errors.NewSchemaError(
				fmt.Sprintf("indicator file %s is missing required column %q", path, col)).
				WithContext("table", name).
				WithContext("column", col)
		}
	}
	return table, nil
}
