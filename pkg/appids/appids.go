// Package appids reads Steam application IDs from line-based text input.
package appids

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Parse reads app IDs from r, one per line. Empty lines and lines starting
// with "#" are skipped silently; lines that are not all decimal digits are
// skipped with a debug diagnostic. Duplicates are kept so output order
// mirrors the input.
func Parse(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !isDigits(line) {
			log.Debug().Str("line", line).Msg("skipping non-numeric line")
			continue
		}

		ids = append(ids, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read app ids: %w", err)
	}

	return ids, nil
}

// ReadFile reads app IDs from the file at path. A missing file is an error;
// a file with zero valid IDs is not (the caller decides whether that is
// fatal).
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ids file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
