package adr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Record is one architecture decision record.
type Record struct {
	Number       int
	Title        string
	Date         string
	Status       string
	Context      string
	Decision     string
	Consequences string

	// Path is the backing file, set when the record is loaded from or
	// written to the store. It is not part of the document itself.
	Path string
}

const (
	dirPerms  = 0o750
	filePerms = 0o600
)

// fileNamePattern matches canonical record file names: a number padded to
// at least four digits, a hyphen, a slug, and the .md extension.
var fileNamePattern = regexp.MustCompile(`^(\d{4,})-.*\.md$`)

// Slug derives a filename-safe form of a title: lower-cased, every run of
// non-alphanumeric characters collapsed into a single hyphen, and hyphens
// trimmed from both ends. A title with no alphanumeric characters yields
// an empty slug.
func Slug(title string) string {
	var builder strings.Builder

	pending := false

	for _, r := range strings.ToLower(title) {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			pending = true

			continue
		}

		if pending && builder.Len() > 0 {
			builder.WriteByte('-')
		}

		pending = false

		builder.WriteRune(r)
	}

	return builder.String()
}

// Filename returns the canonical file name for a record,
// e.g. (7, "Use a Database!") -> "0007-use-a-database.md".
func Filename(number int, title string) string {
	return fmt.Sprintf("%04d-%s.md", number, Slug(title))
}

// numberFromFilename extracts the record number from a canonical file
// name. Returns 0 and false for names that don't match the pattern.
func numberFromFilename(name string) (int, bool) {
	match := fileNamePattern.FindStringSubmatch(name)
	if match == nil {
		return 0, false
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}

	return number, true
}
