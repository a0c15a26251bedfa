package report

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"childstat/internal/dataset"
	"childstat/internal/errors"
	"childstat/internal/synthetic"
)

// WorkbookInput holds the tables shipped alongside the narrative document
type WorkbookInput struct {
	Merged    *dataset.Table
	Missing   *dataset.Table
	MapPoints []synthetic.MapPoint
	Series    []synthetic.TimeSeriesPoint
}

// WriteWorkbook writes the machine-readable companion workbook: one sheet
// for the merged indicators, one for the missing-value summary, and one for
// each synthetic table.
func WriteWorkbook(path string, in WorkbookInput) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeTableSheet(f, "Merged", in.Merged, true); err != nil {
		return err
	}
	if err := writeTableSheet(f, "MissingValues", in.Missing, false); err != nil {
		return err
	}
	if err := writeMapSheet(f, in.MapPoints); err != nil {
		return err
	}
	if err := writeSeriesSheet(f, in.Series); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewRenderError(fmt.Sprintf("failed to save workbook %s", path), err)
	}

	slog.Info("wrote workbook",
		slog.String("path", path),
		slog.Int("merged_rows", len(in.Merged.Rows)),
		slog.Int("map_points", len(in.MapPoints)),
		slog.Int("series_points", len(in.Series)))

	return nil
}

// writeTableSheet writes a Table to a named sheet. The first sheet reuses
// the workbook's default sheet so the file opens on the merged data.
func writeTableSheet(f *excelize.File, sheet string, t *dataset.Table, first bool) error {
	if t == nil {
		return errors.NewRenderError(fmt.Sprintf("workbook sheet %s has no table", sheet), nil)
	}

	if first {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return errors.NewRenderError(fmt.Sprintf("failed to name sheet %s", sheet), err)
		}
	} else {
		if _, err := f.NewSheet(sheet); err != nil {
			return errors.NewRenderError(fmt.Sprintf("failed to create sheet %s", sheet), err)
		}
	}

	header := make([]interface{}, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.NewRenderError(fmt.Sprintf("failed to write header of sheet %s", sheet), err)
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			// Keep numbers as numbers so the sheet sorts and charts sanely
			if v, err := strconv.ParseFloat(cell, 64); err == nil && cell != "" {
				cells[j] = v
			} else {
				cells[j] = cell
			}
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return errors.NewRenderError(fmt.Sprintf("failed to write row %d of sheet %s", i+2, sheet), err)
		}
	}

	return nil
}

func writeMapSheet(f *excelize.File, points []synthetic.MapPoint) error {
	const sheet = "MapPoints"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.NewRenderError("failed to create sheet MapPoints", err)
	}
	header := []interface{}{"country", "lon", "lat", "deprivation_score"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.NewRenderError("failed to write header of sheet MapPoints", err)
	}
	for i, p := range points {
		row := []interface{}{p.Country, p.Lon, p.Lat, p.DeprivationScore}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return errors.NewRenderError(fmt.Sprintf("failed to write row %d of sheet MapPoints", i+2), err)
		}
	}
	return nil
}

func writeSeriesSheet(f *excelize.File, series []synthetic.TimeSeriesPoint) error {
	const sheet = "TimeSeries"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.NewRenderError("failed to create sheet TimeSeries", err)
	}
	header := []interface{}{"country", "year", "deprivation_score"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.NewRenderError("failed to write header of sheet TimeSeries", err)
	}
	for i, p := range series {
		row := []interface{}{p.Country, p.Year, p.DeprivationScore}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return errors.NewRenderError(fmt.Sprintf("failed to write row %d of sheet TimeSeries", i+2), err)
		}
	}
	return nil
}
