package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "adr" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"adr", "--cwd", r.Dir}, args...)
	code := Run(nil, &outBuf, &errBuf, fullArgs, r.Env)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// RecordDir returns the default records directory inside the temp dir.
func (r *CLI) RecordDir() string {
	return filepath.Join(r.Dir, "doc", "adr")
}

// ReadRecord reads and returns the content of a record file by name.
func (r *CLI) ReadRecord(name string) string {
	r.t.Helper()

	content, err := os.ReadFile(filepath.Join(r.RecordDir(), name))
	if err != nil {
		r.t.Fatalf("failed to read record %s: %v", name, err)
	}

	return string(content)
}

// WriteRecord writes content to a record file by name, creating the
// records directory if needed.
func (r *CLI) WriteRecord(name, content string) {
	r.t.Helper()

	err := os.MkdirAll(r.RecordDir(), 0o750)
	if err != nil {
		r.t.Fatalf("failed to create record dir: %v", err)
	}

	err = os.WriteFile(filepath.Join(r.RecordDir(), name), []byte(content), 0o600)
	if err != nil {
		r.t.Fatalf("failed to write record %s: %v", name, err)
	}
}

// assertContains fails the test if content doesn't contain substr.
func assertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// assertNotContains fails the test if content contains substr.
func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
