package adr

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates
var bundledTemplates embed.FS

// Placeholder tokens substituted into templates. Tokens are matched as
// literal substrings, not patterns.
const (
	TokenNumber       = "NUMBER"
	TokenTitle        = "TITLE"
	TokenDate         = "DATE"
	TokenStatus       = "STATUS"
	TokenContext      = "CONTEXT"
	TokenDecision     = "DECISION"
	TokenConsequences = "CONSEQUENCES"
)

// Template kinds shipped with the binary. The init template is used only
// when bootstrapping a store.
const (
	TemplateDefault = "template.md"
	TemplateInit    = "init.md"
)

// templatesDirName is the store-local template override directory.
const templatesDirName = "templates"

// Substitution is one placeholder/value pair. Substitutions are applied
// in the order supplied.
type Substitution struct {
	Token string
	Value string
}

// Render substitutes every literal occurrence of each token with its
// value. Substitutions run sequentially over the same buffer, so the
// output of one substitution is visible to the next: a value that itself
// contains a token applied later in the list is substituted again. That
// order dependence is part of the contract and is pinned by tests.
func Render(tmpl string, subs []Substitution) string {
	out := tmpl
	for _, sub := range subs {
		out = strings.ReplaceAll(out, sub.Token, sub.Value)
	}

	return out
}

// LoadTemplate resolves and reads the template text for kind.
//
// Precedence: the explicitly named path (flag or ADR_TEMPLATE, resolved
// by the caller), then <dir>/templates/<kind>, then the bundled copy.
// A missing file at the named path is an error; the unnamed lookups fall
// through silently.
func LoadTemplate(kind, named, dir string) (string, error) {
	if named != "" {
		data, err := os.ReadFile(named)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, named)
			}

			return "", fmt.Errorf("reading template: %w", err)
		}

		return string(data), nil
	}

	if dir != "" {
		local := filepath.Join(dir, templatesDirName, kind)

		data, err := os.ReadFile(local)
		if err == nil {
			return string(data), nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading template: %w", err)
		}
	}

	data, err := bundledTemplates.ReadFile(templatesDirName + "/" + kind)
	if err != nil {
		return "", fmt.Errorf("bundled template %s: %w", kind, err)
	}

	return string(data), nil
}
