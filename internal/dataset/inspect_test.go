package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspectFixtures() (*Table, *Table) {
	deprivation := &Table{
		Name:    "deprivation",
		Columns: []string{"country", "alpha_3_code", "obs_value"},
		Rows: [][]string{
			{"Albania", "ALB", "12.5"},
			{"", "BRA", ""},
			{"Chad", "TCD", "30.4"},
		},
	}
	metadata := &Table{
		Name:    "metadata",
		Columns: []string{"country", "population", "gdp_per_capita"},
		Rows: [][]string{
			{"Albania", "2800000", ""},
			{"Brazil", "", ""},
		},
	}
	return deprivation, metadata
}

func TestInspect_Counts(t *testing.T) {
	deprivation, metadata := inspectFixtures()
	summary := Inspect(deprivation, metadata)

	tests := []struct {
		column  string
		table   string
		want    int
		present bool
	}{
		{"country", "deprivation", 1, true},
		{"country", "metadata", 0, true},
		{"obs_value", "deprivation", 1, true},
		{"obs_value", "metadata", 0, false},
		{"population", "metadata", 1, true},
		{"population", "deprivation", 0, false},
		{"gdp_per_capita", "metadata", 2, true},
		{"alpha_3_code", "deprivation", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.column+"/"+tt.table, func(t *testing.T) {
			n, ok := summary.Count(tt.column, tt.table)
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func TestInspect_ColumnUnionOrder(t *testing.T) {
	deprivation, metadata := inspectFixtures()
	summary := Inspect(deprivation, metadata)

	// Union keyed by column identity, first-encountered order; country appears once
	assert.Equal(t,
		[]string{"country", "alpha_3_code", "obs_value", "population", "gdp_per_capita"},
		summary.Columns)
	assert.Equal(t, []string{"deprivation", "metadata"}, summary.Tables)
}

func TestInspect_MissingBoundedByTotalCells(t *testing.T) {
	deprivation, metadata := inspectFixtures()
	summary := Inspect(deprivation, metadata)

	for _, tbl := range []*Table{deprivation, metadata} {
		total := 0
		for _, col := range tbl.Columns {
			n, ok := summary.Count(col, tbl.Name)
			require.True(t, ok)
			total += n
		}
		shape := tbl.Shape()
		assert.LessOrEqual(t, total, shape.Rows*shape.Cols)
	}
}

func TestInspect_Idempotent(t *testing.T) {
	deprivation, metadata := inspectFixtures()

	first := Inspect(deprivation, metadata)
	second := Inspect(deprivation, metadata)

	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Tables, second.Tables)
	assert.Equal(t, first.Table(), second.Table())
}

func TestMissingSummary_Table(t *testing.T) {
	deprivation, metadata := inspectFixtures()
	summary := Inspect(deprivation, metadata)

	tbl := summary.Table()
	assert.Equal(t, []string{"column", "deprivation", "metadata"}, tbl.Columns)
	require.Equal(t, 5, len(tbl.Rows))

	// obs_value exists only in the deprivation table; metadata cell is blank
	assert.Equal(t, []string{"obs_value", "1", ""}, tbl.Rows[2])
	assert.Equal(t, []string{"gdp_per_capita", "", "2"}, tbl.Rows[4])
}
