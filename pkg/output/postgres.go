package output

import (
	"context"

	"discussion-urls/pkg/db"
	"discussion-urls/pkg/domain"
)

// PostgresWriter appends records to the discussion_urls table.
type PostgresWriter struct {
	client *db.PostgresClient
}

// NewPostgresWriter connects the client and ensures the schema exists.
func NewPostgresWriter(ctx context.Context, client *db.PostgresClient) (*PostgresWriter, error) {
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	if err := client.EnsureSchema(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &PostgresWriter{client: client}, nil
}

// Write inserts one record.
func (p *PostgresWriter) Write(ctx context.Context, rec domain.URLRecord) error {
	return p.client.InsertRecord(ctx, rec)
}

// Close closes the database handle.
func (p *PostgresWriter) Close() error {
	return p.client.Close()
}
