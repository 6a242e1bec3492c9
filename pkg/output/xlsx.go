package output

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"discussion-urls/pkg/domain"
)

const xlsxSheet = "urls"

// XLSXWriter writes records to a spreadsheet with the same two columns as
// the CSV sink.
type XLSXWriter struct {
	path string
	file *excelize.File
	row  int
}

// NewXLSXWriter prepares a workbook for path with the header row in place.
// The file itself is written on Close.
func NewXLSXWriter(path string) (*XLSXWriter, error) {
	file := excelize.NewFile()

	index, err := file.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := file.SetSheetRow(xlsxSheet, "A1", &[]any{"app_id", "url"}); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	return &XLSXWriter{path: path, file: file, row: 1}, nil
}

// Write appends one record row.
func (x *XLSXWriter) Write(_ context.Context, rec domain.URLRecord) error {
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return fmt.Errorf("compute cell name: %w", err)
	}
	if err := x.file.SetSheetRow(xlsxSheet, cell, &[]any{rec.AppID, rec.URL}); err != nil {
		return fmt.Errorf("write row %d: %w", x.row, err)
	}
	return nil
}

// Close saves the workbook, overwriting the destination.
func (x *XLSXWriter) Close() error {
	if err := x.file.SaveAs(x.path); err != nil {
		_ = x.file.Close()
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := x.file.Close(); err != nil {
		return fmt.Errorf("close workbook: %w", err)
	}
	return nil
}
