package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommand(t *testing.T) {
	t.Parallel()

	t.Run("creates bootstrap record in default directory", func(t *testing.T) {
		t.Parallel()

		r := NewCLI(t)

		out := r.MustRun("init")

		want := filepath.Join(r.RecordDir(), "0001-record-architecture-decisions.md")
		if out != want {
			t.Errorf("init printed %q, want %q", out, want)
		}

		content := r.ReadRecord("0001-record-architecture-decisions.md")
		assertContains(t, content, "# 1. Record architecture decisions")
		assertContains(t, content, "## Status")
		assertContains(t, content, "Accepted")
		assertContains(t, content, "We will use Architecture Decision Records")
	})

	t.Run("directory argument writes marker", func(t *testing.T) {
		t.Parallel()

		r := NewCLI(t)

		out := r.MustRun("init", "docs/decisions")

		if !strings.Contains(out, filepath.Join("docs", "decisions")) {
			t.Errorf("init printed %q, want path under docs/decisions", out)
		}

		marker, err := os.ReadFile(filepath.Join(r.Dir, ".adr-dir"))
		if err != nil {
			t.Fatalf("marker file not written: %v", err)
		}

		if strings.TrimSpace(string(marker)) != "docs/decisions" {
			t.Errorf("marker content = %q, want docs/decisions", marker)
		}

		// Later invocations resolve the marked directory.
		out = r.MustRun("new", "Use", "sqlite")
		if !strings.Contains(out, filepath.Join("docs", "decisions", "0002-use-sqlite.md")) {
			t.Errorf("new after init printed %q, want record 2 under docs/decisions", out)
		}
	})
}
