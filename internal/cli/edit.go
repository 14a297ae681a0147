package cli

import (
	"fmt"
	"strconv"

	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

// EditCmd returns the edit command.
func EditCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("edit", flag.ContinueOnError),
		Usage: "edit <number>",
		Short: "Open a decision record in the editor",
		Long: "Open the record with the given number in the configured editor\n" +
			"(config editor key, then $VISUAL, then $EDITOR).",
		Exec: func(o *IO, args []string) error {
			return execEdit(o, cfg, args)
		},
	}
}

func execEdit(_ *IO, cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: want a record number", adr.ErrInvalidArgument)
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a record number", adr.ErrInvalidArgument, args[0])
	}

	rec, err := cfg.Store().Get(number)
	if err != nil {
		return err
	}

	editor, err := resolveEditor(cfg)
	if err != nil {
		return err
	}

	return runEditor(editor, rec.Path)
}
