package cli

import (
	"fmt"

	"github.com/peterh/liner"
)

// promptTitle asks for the record title interactively. Outside a
// terminal there is nothing to prompt, so the title stays empty and the
// caller reports it as missing.
func promptTitle() (string, error) {
	if !liner.TerminalSupported() {
		return "", nil
	}

	line := liner.NewLiner()
	defer func() { _ = line.Close() }()

	title, err := line.Prompt("Title: ")
	if err != nil {
		return "", fmt.Errorf("reading title: %w", err)
	}

	return title, nil
}
