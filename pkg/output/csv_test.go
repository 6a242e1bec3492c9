package output

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"discussion-urls/pkg/domain"
)

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter failed: %v", err)
	}

	ctx := context.Background()
	records := []domain.URLRecord{
		{AppID: "42", URL: "https://example.com/app/42"},
		{AppID: "42", URL: "https://example.com/app/42&p=2"},
		{AppID: "7", URL: "https://example.com/app/7"},
	}
	for _, rec := range records {
		if err := w.Write(ctx, rec); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "app_id" || rows[0][1] != "url" {
		t.Errorf("Expected header app_id,url, got %v", rows[0])
	}
	for i, rec := range records {
		if rows[i+1][0] != rec.AppID || rows[i+1][1] != rec.URL {
			t.Errorf("Row %d: expected %+v, got %v", i+1, rec, rows[i+1])
		}
	}
}

func TestCSVWriter_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	if err := os.WriteFile(path, []byte("stale content\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "app_id,url\n" {
		t.Errorf("Expected only the header after overwrite, got %q", string(data))
	}
}
