package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"discussion-urls/pkg/domain"
)

// csvHeader is the fixed two-column header of the output contract.
var csvHeader = []string{"app_id", "url"}

// CSVWriter writes records to a CSV file with an app_id,url header.
type CSVWriter struct {
	file *os.File
	w    *csv.Writer
}

// NewCSVWriter creates (or truncates) path and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	return &CSVWriter{file: file, w: w}, nil
}

// Write appends one record row.
func (c *CSVWriter) Write(_ context.Context, rec domain.URLRecord) error {
	if err := c.w.Write([]string{rec.AppID, rec.URL}); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		_ = c.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}
	return nil
}
