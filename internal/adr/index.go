package adr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// IndexFileName is the generated listing written into the records
// directory.
const IndexFileName = "README.md"

// RegenerateIndex rewrites the index file from the current store
// contents and returns its path. Records appear in directory-listing
// order (os.ReadDir name order); no numeric sort is imposed.
func (s *Store) RegenerateIndex() (string, error) {
	records, err := s.List()
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	builder.WriteString("# Architecture Decision Records\n\n")
	builder.WriteString("## Decisions\n\n")

	for _, rec := range records {
		fmt.Fprintf(&builder, "- [%s](%s)\n", rec.Title, filepath.Base(rec.Path))
	}

	path := filepath.Join(s.Dir, IndexFileName)

	writeErr := atomic.WriteFile(path, strings.NewReader(builder.String()))
	if writeErr != nil {
		return "", fmt.Errorf("writing index file: %w", writeErr)
	}

	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return "", fmt.Errorf("setting index file permissions: %w", chmodErr)
	}

	return path, nil
}
