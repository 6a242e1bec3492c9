// Package output serializes generated URL records to tabular sinks.
package output

import (
	"context"
	"strings"

	"discussion-urls/pkg/domain"
)

// Writer consumes the ordered URL record stream. Records must be written in
// the order received; Close flushes and releases the sink.
type Writer interface {
	Write(ctx context.Context, rec domain.URLRecord) error
	Close() error
}

// NewFileWriter picks a file sink by extension: .xlsx gets a spreadsheet,
// everything else CSV. The destination is overwritten.
func NewFileWriter(path string) (Writer, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return NewXLSXWriter(path)
	}
	return NewCSVWriter(path)
}

// MultiWriter fans records out to several sinks in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter wraps the given sinks. A single sink is returned unwrapped.
func NewMultiWriter(writers ...Writer) Writer {
	if len(writers) == 1 {
		return writers[0]
	}
	return &MultiWriter{writers: writers}
}

// Write writes the record to every sink, stopping at the first error.
func (m *MultiWriter) Write(ctx context.Context, rec domain.URLRecord) error {
	for _, w := range m.writers {
		if err := w.Write(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink, returning the first error seen.
func (m *MultiWriter) Close() error {
	var firstErr error
	for _, w := range m.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
