package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"childstat/internal/errors"
)

// Table is an in-memory tabular dataset with an ordered header and string
// cells. Cells are kept as strings so files with arbitrary schemas (the
// metadata CSV) load without a column declaration; typed access goes through
// the accessor methods.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Shape describes the dimensions of a table
type Shape struct {
	Rows int
	Cols int
}

// Shape returns the row and column counts of the table
func (t *Table) Shape() Shape {
	return Shape{Rows: len(t.Rows), Cols: len(t.Columns)}
}

// ColumnIndex returns the position of the named column
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, col := range t.Columns {
		if col == name {
			return i, true
		}
	}
	return -1, false
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Column returns all cells of the named column in row order
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, errors.NewSchemaError(fmt.Sprintf("column %q not found in table %q", name, t.Name))
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Floats returns the numeric values of the named column, skipping blank
// cells. A non-blank cell that does not parse as a number is an error.
func (t *Table) Floats(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(cells))
	for i, cell := range cells {
		if isBlank(cell) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, errors.NewSchemaError(
				fmt.Sprintf("column %q in table %q has non-numeric value %q at row %d", name, t.Name, cell, i))
		}
		values = append(values, v)
	}
	return values, nil
}

// Distinct returns the non-blank values of the named column with duplicates
// collapsed, preserving first-encountered order.
func (t *Table) Distinct(name string) ([]string, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(cells))
	var values []string
	for _, cell := range cells {
		if isBlank(cell) || seen[cell] {
			continue
		}
		seen[cell] = true
		values = append(values, cell)
	}
	return values, nil
}

// Head returns a copy of the table truncated to the first n rows
func (t *Table) Head(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, n),
	}
	for i := 0; i < n; i++ {
		head.Rows[i] = append([]string(nil), t.Rows[i]...)
	}
	return head
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	clone := &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		clone.Rows[i] = append([]string(nil), row...)
	}
	return clone
}

// RenameColumn renames a column in place. The source column must exist and
// the target name must not already be taken.
func (t *Table) RenameColumn(from, to string) error {
	idx, ok := t.ColumnIndex(from)
	if !ok {
		return errors.NewSchemaError(fmt.Sprintf("column %q not found in table %q", from, t.Name)).
			WithContext("table", t.Name).
			WithContext("column", from)
	}
	if t.HasColumn(to) {
		return errors.NewSchemaError(fmt.Sprintf("column %q already exists in table %q", to, t.Name))
	}
	t.Columns[idx] = to
	return nil
}

// isBlank reports whether a cell counts as missing
func isBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}
