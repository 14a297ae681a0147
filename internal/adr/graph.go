package adr

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// statusLinkPattern matches one link annotation line in a status section:
// "<text> [<title>](<file>)".
var statusLinkPattern = regexp.MustCompile(`^([\w -]+) \[[^\]]*\]\(([^)]+)\)$`)

// Graph renders the store's link graph in Graphviz dot form: one node per
// record, dotted edges chaining records in listing order, and one labeled
// edge per status link annotation.
func (s *Store) Graph() (string, error) {
	records, err := s.List()
	if err != nil {
		return "", err
	}

	byFile := make(map[string]int, len(records))
	for _, rec := range records {
		byFile[filepath.Base(rec.Path)] = rec.Number
	}

	var builder strings.Builder

	builder.WriteString("digraph {\n")
	builder.WriteString("  node [shape=plaintext]\n")

	for _, rec := range records {
		fmt.Fprintf(&builder, "  _%d [label=\"%d. %s\"; URL=\"%s\"]\n",
			rec.Number, rec.Number, rec.Title, filepath.Base(rec.Path))
	}

	for i := 1; i < len(records); i++ {
		fmt.Fprintf(&builder, "  _%d -> _%d [style=\"dotted\", weight=1]\n",
			records[i-1].Number, records[i].Number)
	}

	for _, rec := range records {
		for line := range strings.Lines(rec.Status) {
			match := statusLinkPattern.FindStringSubmatch(strings.TrimSpace(line))
			if match == nil {
				continue
			}

			target, ok := byFile[match[2]]
			if !ok {
				continue
			}

			fmt.Fprintf(&builder, "  _%d -> _%d [label=\"%s\", weight=0]\n",
				rec.Number, target, match[1])
		}
	}

	builder.WriteString("}\n")

	return builder.String(), nil
}
