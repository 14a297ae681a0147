package adr

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDir(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()

		dir, err := ResolveDir(workDir, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workDir, "doc", "adr"), dir)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()

		dir, err := ResolveDir(workDir, map[string]string{EnvDir: "decisions"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workDir, "decisions"), dir)
	})

	t.Run("absolute environment override", func(t *testing.T) {
		t.Parallel()

		target := t.TempDir()

		dir, err := ResolveDir(t.TempDir(), map[string]string{EnvDir: target})
		require.NoError(t, err)
		assert.Equal(t, target, dir)
	})

	t.Run("marker file", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, MarkerFileName), []byte("docs/decisions\n"), 0o600))

		dir, err := ResolveDir(workDir, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workDir, "docs", "decisions"), dir)
	})

	t.Run("both overrides conflict", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, MarkerFileName), []byte("a\n"), 0o600))

		_, err := ResolveDir(workDir, map[string]string{EnvDir: "b"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigConflict))
	})
}

func TestWriteMarker(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()

	require.NoError(t, WriteMarker(workDir, "docs/decisions"))

	dir, err := ResolveDir(workDir, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "docs", "decisions"), dir)
}

func TestLoadProjectConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadProjectConfig(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, cfg.Editor)
	})

	t.Run("JSONC with comments and trailing comma", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		content := "{\n  // preferred editor for adr edit\n  \"editor\": \"vi\",\n}\n"
		require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(content), 0o600))

		cfg, err := LoadProjectConfig(workDir)
		require.NoError(t, err)
		assert.Equal(t, "vi", cfg.Editor)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte("{"), 0o600))

		_, err := LoadProjectConfig(workDir)
		require.Error(t, err)
	})
}
