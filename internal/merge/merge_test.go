package merge

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"childstat/internal/dataset"
	apperrors "childstat/internal/errors"
)

func deprivationTable() *dataset.Table {
	return &dataset.Table{
		Name:    "deprivation",
		Columns: []string{"country", "alpha_3_code", "obs_value"},
		Rows: [][]string{
			{"Albania", "ALB", "12.5"},
			{"Brazil", "BRA", "8.1"},
			{"Chad", "TCD", "30.4"},
		},
	}
}

func maternityTable() *dataset.Table {
	return &dataset.Table{
		Name:    "maternity",
		Columns: []string{"country", "alpha_3_code", "obs_value"},
		Rows: [][]string{
			{"Albania", "ALB", "365"},
			{"Brazil", "BRA", "120"},
		},
	}
}

func TestIndicators(t *testing.T) {
	merged, err := Indicators(deprivationTable(), maternityTable())
	require.NoError(t, err)

	// Codes present on both sides survive; Chad is dropped
	assert.Equal(t, 2, len(merged.Rows))
	assert.Equal(t,
		[]string{"country", "alpha_3_code", "deprivation_score", "maternity_leave_days"},
		merged.Columns)
	assert.Equal(t, []string{"Albania", "ALB", "12.5", "365"}, merged.Rows[0])
	assert.Equal(t, []string{"Brazil", "BRA", "8.1", "120"}, merged.Rows[1])
}

func TestIndicators_DoesNotMutateInputs(t *testing.T) {
	deprivation := deprivationTable()
	maternity := maternityTable()

	_, err := Indicators(deprivation, maternity)
	require.NoError(t, err)

	assert.Equal(t, []string{"country", "alpha_3_code", "obs_value"}, deprivation.Columns)
	assert.Equal(t, []string{"country", "alpha_3_code", "obs_value"}, maternity.Columns)
}

func TestIndicators_MissingObsValue(t *testing.T) {
	deprivation := deprivationTable()
	deprivation.Columns[2] = "value"

	_, err := Indicators(deprivation, maternityTable())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeSchema, appErr.Type)
}

func TestInnerJoin_RowCountBound(t *testing.T) {
	merged, err := Indicators(deprivationTable(), maternityTable())
	require.NoError(t, err)

	// With unique codes on both sides, the bound is reached exactly
	assert.Equal(t, 2, len(merged.Rows))
	assert.LessOrEqual(t, len(merged.Rows), 2)
}

func TestInnerJoin_BlankKeysDrop(t *testing.T) {
	deprivation := deprivationTable()
	deprivation.Rows = append(deprivation.Rows, []string{"Nowhere", "", "1.0"})
	maternity := maternityTable()
	maternity.Rows = append(maternity.Rows, []string{"Nowhere", "  ", "10"})

	merged, err := Indicators(deprivation, maternity)
	require.NoError(t, err)
	assert.Equal(t, 2, len(merged.Rows))
}

func TestInnerJoin_DuplicateCodesFanOut(t *testing.T) {
	maternity := maternityTable()
	maternity.Rows = append(maternity.Rows, []string{"Albania", "ALB", "400"})

	merged, err := Indicators(deprivationTable(), maternity)
	require.NoError(t, err)

	// ALB matches twice on the right, so the join produces two ALB rows
	assert.Equal(t, 3, len(merged.Rows))
	assert.Equal(t, "365", merged.Rows[0][3])
	assert.Equal(t, "400", merged.Rows[1][3])
}

func TestInnerJoin_KeyAbsent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l, r *dataset.Table)
	}{
		{
			name:   "left missing key",
			mutate: func(l, r *dataset.Table) { l.Columns[1] = "code" },
		},
		{
			name:   "right missing key",
			mutate: func(l, r *dataset.Table) { r.Columns[1] = "code" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := deprivationTable()
			right := maternityTable()
			tt.mutate(left, right)

			_, err := InnerJoin(left, right, JoinKey)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrTypeSchema, appErr.Type)
		})
	}
}

func TestRename_Apply(t *testing.T) {
	tbl := deprivationTable()
	err := Rename{From: "obs_value", To: "deprivation_score"}.Apply(tbl)
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn("deprivation_score"))

	err = Rename{From: "obs_value", To: "again"}.Apply(tbl)
	assert.Error(t, err)
}
