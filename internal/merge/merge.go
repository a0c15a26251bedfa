// Package merge joins the two indicator tables into the merged record table
// used by the scatter and distribution charts.
package merge

import (
	"fmt"
	"log/slog"
	"strings"

	"childstat/internal/dataset"
	"childstat/internal/errors"
)

// JoinKey is the country code column the indicator tables are joined on
const JoinKey = "alpha_3_code"

// Rename is a validated column rename applied before the join
type Rename struct {
	From string
	To   string
}

// Apply renames the column on the given table, failing with a schema error
// when the source column is absent.
func (r Rename) Apply(t *dataset.Table) error {
	return t.RenameColumn(r.From, r.To)
}

// Indicators renames obs_value to a semantic name on each indicator table
// and inner-joins them on the alpha-3 country code. The inputs are never
// mutated; renames happen on private copies.
//
// Rows with a blank join key drop out. Duplicate codes are not deduplicated:
// if either side repeats a code the join fans out, matching the source data
// as-is.
func Indicators(deprivation, maternity *dataset.Table) (*dataset.Table, error) {
	left := deprivation.Clone()
	if err := (Rename{From: "obs_value", To: "deprivation_score"}).Apply(left); err != nil {
		return nil, err
	}

	right := maternity.Clone()
	if err := (Rename{From: "obs_value", To: "maternity_leave_days"}).Apply(right); err != nil {
		return nil, err
	}

	merged, err := InnerJoin(left, right, JoinKey)
	if err != nil {
		return nil, err
	}
	merged.Name = "merged"

	slog.Info("merged indicator tables",
		slog.Int("deprivation_rows", len(deprivation.Rows)),
		slog.Int("maternity_rows", len(maternity.Rows)),
		slog.Int("merged_rows", len(merged.Rows)))

	return merged, nil
}

// InnerJoin joins two tables on the named key column, keeping only rows
// whose key exists on both sides. The output carries the left columns
// followed by the right columns; right columns whose names already exist on
// the left (the key itself, the duplicated country name) are skipped in
// favor of the left values.
func InnerJoin(left, right *dataset.Table, key string) (*dataset.Table, error) {
	leftKey, ok := left.ColumnIndex(key)
	if !ok {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("join key %q not found in table %q", key, left.Name))
	}
	rightKey, ok := right.ColumnIndex(key)
	if !ok {
		return nil, errors.NewSchemaError(
			fmt.Sprintf("join key %q not found in table %q", key, right.Name))
	}

	// Columns of the right side that survive into the output
	var rightCols []int
	out := &dataset.Table{
		Name:    left.Name + "_" + right.Name,
		Columns: append([]string(nil), left.Columns...),
	}
	for i, col := range right.Columns {
		if left.HasColumn(col) {
			continue
		}
		rightCols = append(rightCols, i)
		out.Columns = append(out.Columns, col)
	}

	// Index the right side by key; duplicate keys fan out
	rightByKey := make(map[string][]int)
	for i, row := range right.Rows {
		k := strings.TrimSpace(row[rightKey])
		if k == "" {
			continue
		}
		rightByKey[k] = append(rightByKey[k], i)
	}

	for _, leftRow := range left.Rows {
		k := strings.TrimSpace(leftRow[leftKey])
		if k == "" {
			continue
		}
		for _, ri := range rightByKey[k] {
			row := make([]string, 0, len(out.Columns))
			row = append(row, leftRow...)
			for _, ci := range rightCols {
				row = append(row, right.Rows[ri][ci])
			}
			out.Rows = append(out.Rows, row)
		}
	}

	return out, nil
}
