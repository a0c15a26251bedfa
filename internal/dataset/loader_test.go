package dataset

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "childstat/internal/errors"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "indicator.csv",
		"country,alpha_3_code,obs_value\nAlbania,ALB,12.5\nBrazil,BRA,8.1\n")

	table, err := LoadCSV(path, "deprivation")
	require.NoError(t, err)

	assert.Equal(t, "deprivation", table.Name)
	assert.Equal(t, []string{"country", "alpha_3_code", "obs_value"}, table.Columns)
	require.Equal(t, 2, len(table.Rows))
	assert.Equal(t, []string{"Albania", "ALB", "12.5"}, table.Rows[0])
}

func TestLoadCSV_FileNotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), "deprivation")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeLoad, appErr.Type)
}

func TestLoadCSV_Malformed(t *testing.T) {
	// Unterminated quote makes encoding/csv fail
	path := writeCSV(t, "bad.csv", "country,code\n\"Albania,ALB\n")

	_, err := LoadCSV(path, "bad")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrTypeLoad, appErr.Type)
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")

	_, err := LoadCSV(path, "empty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestLoadCSV_RaggedRows(t *testing.T) {
	path := writeCSV(t, "ragged.csv",
		"country,alpha_3_code,obs_value\nAlbania,ALB\nBrazil,BRA,8.1,extra\n")

	table, err := LoadCSV(path, "ragged")
	require.NoError(t, err)

	// Short rows padded with blanks, long rows truncated to the header width
	assert.Equal(t, []string{"Albania", "ALB", ""}, table.Rows[0])
	assert.Equal(t, []string{"Brazil", "BRA", "8.1"}, table.Rows[1])
}

func TestLoadIndicator(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		errType apperrors.ErrorType
	}{
		{
			name:    "all required columns",
			content: "country,alpha_3_code,obs_value\nAlbania,ALB,12.5\n",
			wantErr: false,
		},
		{
			name:    "extra columns allowed",
			content: "country,alpha_3_code,indicator,obs_value,unit\nAlbania,ALB,deprivation,12.5,%\n",
			wantErr: false,
		},
		{
			name:    "missing obs_value",
			content: "country,alpha_3_code,value\nAlbania,ALB,12.5\n",
			wantErr: true,
			errType: apperrors.ErrTypeSchema,
		},
		{
			name:    "missing alpha_3_code",
			content: "country,code,obs_value\nAlbania,ALB,12.5\n",
			wantErr: true,
			errType: apperrors.ErrTypeSchema,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "indicator.csv", tt.content)
			table, err := LoadIndicator(path, "indicator")
			if tt.wantErr {
				require.Error(t, err)
				var appErr *apperrors.AppError
				require.True(t, stderrors.As(err, &appErr))
				assert.Equal(t, tt.errType, appErr.Type)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, table)
		})
	}
}
