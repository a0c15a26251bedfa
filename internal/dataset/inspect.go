package dataset

import (
	"log/slog"
	"strconv"
)

// MissingSummary holds per-column missing-value counts across a set of
// source tables. Columns is the union of column names in first-encountered
// order; a column absent from a given table has no entry for that table.
type MissingSummary struct {
	Columns []string
	Tables  []string
	counts  map[string]map[string]int
}

// Inspect computes the missing-value summary for the given tables. Missing
// means an empty or whitespace-only cell. Inspect never mutates its inputs,
// so inspecting the same tables twice yields identical summaries.
func Inspect(tables ...*Table) *MissingSummary {
	summary := &MissingSummary{
		counts: make(map[string]map[string]int),
	}

	for _, t := range tables {
		summary.Tables = append(summary.Tables, t.Name)
		for _, col := range t.Columns {
			if _, seen := summary.counts[col]; !seen {
				summary.Columns = append(summary.Columns, col)
				summary.counts[col] = make(map[string]int)
			}
			summary.counts[col][t.Name] = missingInColumn(t, col)
		}
	}

	for _, t := range tables {
		shape := t.Shape()
		slog.Info("inspected dataset",
			slog.String("table", t.Name),
			slog.Int("rows", shape.Rows),
			slog.Int("columns", shape.Cols))
	}

	return summary
}

// Count returns the missing-value count for a column in a table. The second
// return value is false when the table does not have that column.
func (s *MissingSummary) Count(column, table string) (int, bool) {
	byTable, ok := s.counts[column]
	if !ok {
		return 0, false
	}
	n, ok := byTable[table]
	return n, ok
}

// Table renders the summary as a table with one row per column name and one
// count column per source table, blank where the column is absent.
func (s *MissingSummary) Table() *Table {
	out := &Table{
		Name:    "missing_values",
		Columns: append([]string{"column"}, s.Tables...),
	}
	for _, col := range s.Columns {
		row := make([]string, 0, len(s.Tables)+1)
		row = append(row, col)
		for _, table := range s.Tables {
			if n, ok := s.Count(col, table); ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// missingInColumn counts blank cells in one column of one table
func missingInColumn(t *Table, name string) int {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return 0
	}
	count := 0
	for _, row := range t.Rows {
		if isBlank(row[idx]) {
			count++
		}
	}
	return count
}
