package appids

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_SkipsCommentsBlanksAndNonNumeric(t *testing.T) {
	input := "123\n\n# comment\nabc\n456\n123\n"

	ids, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := []string{"123", "456", "123"}
	if len(ids) != len(expected) {
		t.Fatalf("Expected %d IDs, got %d: %v", len(expected), len(ids), ids)
	}
	for i, want := range expected {
		if ids[i] != want {
			t.Errorf("Expected ID %d to be %q, got %q", i, want, ids[i])
		}
	}
}

func TestParse_TrimsSurroundingWhitespace(t *testing.T) {
	ids, err := Parse(strings.NewReader("  42  \n\t7\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(ids) != 2 || ids[0] != "42" || ids[1] != "7" {
		t.Fatalf("Expected [42 7], got %v", ids)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	ids, err := Parse(strings.NewReader("# only a comment\n\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("Expected no IDs, got %v", ids)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	if err := os.WriteFile(path, []byte("100\n200\n"), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	ids, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "100" || ids[1] != "200" {
		t.Fatalf("Expected [100 200], got %v", ids)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
