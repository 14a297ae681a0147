package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

var errNoEditorFound = errors.New("no editor found (set editor in .adr.json, $VISUAL, or $EDITOR)")

// resolveEditor picks an available editor.
// Priority: config editor -> $VISUAL -> $EDITOR -> error.
func resolveEditor(cfg *Config) (string, error) {
	if cfg.Editor != "" {
		_, lookErr := exec.LookPath(cfg.Editor)
		if lookErr == nil {
			return cfg.Editor, nil
		}
	}

	if visual := cfg.Env["VISUAL"]; visual != "" {
		_, lookErr := exec.LookPath(visual)
		if lookErr == nil {
			return visual, nil
		}
	}

	if editor := cfg.Env["EDITOR"]; editor != "" {
		_, lookErr := exec.LookPath(editor)
		if lookErr == nil {
			return editor, nil
		}
	}

	return "", errNoEditorFound
}

// runEditor opens path in editor with inherited stdio and waits for it.
func runEditor(editor, path string) error {
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	if runErr != nil {
		return fmt.Errorf("editor failed: %w", runErr)
	}

	return nil
}

// launchEditorIfConfigured opens path when an editor is available and
// does nothing otherwise. Used by new, where editing is a convenience,
// not a requirement.
func launchEditorIfConfigured(o *IO, cfg *Config, path string) {
	editor, err := resolveEditor(cfg)
	if err != nil {
		return
	}

	runErr := runEditor(editor, path)
	if runErr != nil {
		o.Warn(runErr.Error())
	}
}
