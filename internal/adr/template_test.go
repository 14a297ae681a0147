package adr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("substitutes every occurrence", func(t *testing.T) {
		t.Parallel()

		got := Render("X and X and Y", []Substitution{{"X", "1"}, {"Y", "2"}})
		assert.Equal(t, "1 and 1 and 2", got)
	})

	t.Run("order follows the supplied list", func(t *testing.T) {
		t.Parallel()

		// Each substitution sees the previous one's output, so a value
		// containing a later token is substituted again. This is the
		// documented order-dependence of Render, not an accident of the
		// test.
		got := Render("A", []Substitution{{"A", "B"}, {"B", "C"}})
		assert.Equal(t, "C", got)
	})

	t.Run("token name inside an earlier value is reapplied", func(t *testing.T) {
		t.Parallel()

		got := Render("# TITLE\n\nSTATUS", []Substitution{
			{"TITLE", "UPDATE STATUS PAGE"},
			{"STATUS", "Accepted"},
		})

		// The STATUS substring of the title gets rewritten too. Encode
		// inherits this hazard; it is pinned here so nobody "fixes" it
		// silently.
		assert.Equal(t, "# UPDATE Accepted PAGE\n\nAccepted", got)
	})

	t.Run("tokens are literal, not patterns", func(t *testing.T) {
		t.Parallel()

		got := Render("a.c", []Substitution{{".", "-"}})
		assert.Equal(t, "a-c", got)
	})
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("missing named path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTemplate(TemplateDefault, filepath.Join(t.TempDir(), "nope.md"), "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTemplateNotFound))
	})

	t.Run("named path wins over everything", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		custom := filepath.Join(dir, "custom.md")
		require.NoError(t, os.WriteFile(custom, []byte("custom NUMBER\n"), 0o600))

		got, err := LoadTemplate(TemplateDefault, custom, dir)
		require.NoError(t, err)
		assert.Equal(t, "custom NUMBER\n", got)
	})

	t.Run("store-local template wins over bundled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", TemplateDefault), []byte("local TITLE\n"), 0o600))

		got, err := LoadTemplate(TemplateDefault, "", dir)
		require.NoError(t, err)
		assert.Equal(t, "local TITLE\n", got)
	})

	t.Run("bundled fallback when nothing else exists", func(t *testing.T) {
		t.Parallel()

		got, err := LoadTemplate(TemplateDefault, "", t.TempDir())
		require.NoError(t, err)

		for _, token := range []string{TokenNumber, TokenTitle, TokenDate, TokenStatus, TokenContext, TokenDecision, TokenConsequences} {
			assert.Contains(t, got, token)
		}
	})

	t.Run("bundled init template differs from default", func(t *testing.T) {
		t.Parallel()

		initTmpl, err := LoadTemplate(TemplateInit, "", "")
		require.NoError(t, err)

		defaultTmpl, err := LoadTemplate(TemplateDefault, "", "")
		require.NoError(t, err)

		assert.NotEqual(t, defaultTmpl, initTmpl)
		assert.Contains(t, initTmpl, "record the architectural decisions")
		assert.False(t, strings.Contains(initTmpl, TokenContext))
	})
}

func TestEncodeDefaultTemplateGolden(t *testing.T) {
	t.Parallel()

	tmpl, err := LoadTemplate(TemplateDefault, "", "")
	require.NoError(t, err)

	rec := Record{
		Number:       9,
		Title:        "Use Markdown",
		Date:         "2024-03-01",
		Status:       "Accepted",
		Context:      "We keep notes in many formats.",
		Decision:     "We will write notes in Markdown.",
		Consequences: "Notes render on any forge.",
	}

	g := goldie.New(t)
	g.Assert(t, "default_template", []byte(Encode(&rec, tmpl)))
}
