package adr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// DefaultDir is the records directory used when nothing overrides it,
// relative to the working directory.
const DefaultDir = "doc/adr"

// MarkerFileName is the working-directory marker file holding the
// records directory path.
const MarkerFileName = ".adr-dir"

// Environment variables overriding the records directory and the
// template file.
const (
	EnvDir      = "ADR_DIR"
	EnvTemplate = "ADR_TEMPLATE"
)

// ConfigFileName is the optional project config file (JSONC).
const ConfigFileName = ".adr.json"

// ProjectConfig holds the optional per-project settings from .adr.json.
type ProjectConfig struct {
	Editor string `json:"editor,omitempty"`
}

// ResolveDir resolves the records directory for one invocation. At most
// one override may be present: the ADR_DIR environment variable or an
// .adr-dir marker file in workDir; both at once is a configuration
// conflict. With neither, DefaultDir applies. Relative results are
// anchored at workDir.
func ResolveDir(workDir string, env map[string]string) (string, error) {
	envDir := env[EnvDir]

	marker := ""

	data, err := os.ReadFile(filepath.Join(workDir, MarkerFileName))

	switch {
	case err == nil:
		marker = strings.TrimSpace(string(data))
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("reading %s: %w", MarkerFileName, err)
	}

	var dir string

	switch {
	case envDir != "" && marker != "":
		return "", fmt.Errorf("%w: %s=%s and %s are both present", ErrConfigConflict, EnvDir, envDir, MarkerFileName)
	case envDir != "":
		dir = envDir
	case marker != "":
		dir = marker
	default:
		dir = DefaultDir
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}

	return dir, nil
}

// WriteMarker records dir as the project's records directory in the
// .adr-dir marker file.
func WriteMarker(workDir, dir string) error {
	path := filepath.Join(workDir, MarkerFileName)

	writeErr := atomic.WriteFile(path, strings.NewReader(dir+"\n"))
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", MarkerFileName, writeErr)
	}

	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("setting %s permissions: %w", MarkerFileName, chmodErr)
	}

	return nil
}

// LoadProjectConfig reads workDir/.adr.json if present. The file is JSONC
// (comments and trailing commas allowed). A missing file is not an error.
func LoadProjectConfig(workDir string) (ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(workDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ProjectConfig{}, nil
		}

		return ProjectConfig{}, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	var cfg ProjectConfig

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return ProjectConfig{}, fmt.Errorf("invalid %s: %w", ConfigFileName, unmarshalErr)
	}

	return cfg, nil
}
