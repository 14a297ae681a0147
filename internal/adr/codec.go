package adr

import (
	"regexp"
	"strconv"
	"strings"
)

// Encode renders rec through tmpl, substituting the seven placeholder
// tokens in a fixed order. Substitution is sequential (see Render), so a
// field value containing a token name applied later in the order is
// itself substituted again.
func Encode(rec *Record, tmpl string) string {
	return Render(tmpl, []Substitution{
		{TokenNumber, strconv.Itoa(rec.Number)},
		{TokenTitle, rec.Title},
		{TokenDate, rec.Date},
		{TokenStatus, rec.Status},
		{TokenContext, rec.Context},
		{TokenDecision, rec.Decision},
		{TokenConsequences, rec.Consequences},
	})
}

var (
	titlePattern = regexp.MustCompile(`^# (\d+)\. (.+)$`)
	datePattern  = regexp.MustCompile(`^Date: (.+)$`)

	// sectionPattern matches second-level headings only; deeper headings
	// stay inside the enclosing section body.
	sectionPattern = regexp.MustCompile(`^## ([^#].*)$`)
)

// Decode parses rendered record text back into a Record. Recognition is
// lexical, not a grammar: a "# N. Title" heading plus a "Date:" line
// populate number, title and date, and each of the Status, Context,
// Decision and Consequences sections is captured up to the next
// second-level heading or end of document, trimmed of surrounding
// whitespace. Absent patterns leave the corresponding fields unset;
// Decode never fails on missing structure.
func Decode(text string) Record {
	var rec Record

	sections := map[string]*string{
		"Status":       &rec.Status,
		"Context":      &rec.Context,
		"Decision":     &rec.Decision,
		"Consequences": &rec.Consequences,
	}

	var (
		current *string
		body    []string
	)

	flush := func() {
		if current != nil {
			*current = strings.TrimSpace(strings.Join(body, "\n"))
		}

		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if match := sectionPattern.FindStringSubmatch(line); match != nil {
			flush()

			current = sections[strings.TrimSpace(match[1])]

			continue
		}

		if current == nil && rec.Number == 0 {
			if match := titlePattern.FindStringSubmatch(line); match != nil {
				rec.Number, _ = strconv.Atoi(match[1])
				rec.Title = match[2]

				continue
			}
		}

		if current == nil && rec.Date == "" {
			if match := datePattern.FindStringSubmatch(line); match != nil {
				rec.Date = strings.TrimSpace(match[1])

				continue
			}
		}

		if current != nil {
			body = append(body, line)
		}
	}

	flush()

	return rec
}
