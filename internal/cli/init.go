package cli

import (
	"path/filepath"

	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

// InitCmd returns the init command.
func InitCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("init", flag.ContinueOnError),
		Usage: "init [dir]",
		Short: "Initialise the records directory",
		Long: "Initialise the records directory and create the first record, which\n" +
			"documents the decision to keep architecture decision records.\n" +
			"With a directory argument, an " + adr.MarkerFileName + " marker is written so later\n" +
			"invocations find the same directory.",
		Exec: func(o *IO, args []string) error {
			return execInit(o, cfg, args)
		},
	}
}

func execInit(o *IO, cfg *Config, args []string) error {
	store := cfg.Store()

	if len(args) > 0 {
		dir := args[0]

		err := adr.WriteMarker(cfg.WorkDir, dir)
		if err != nil {
			return err
		}

		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cfg.WorkDir, dir)
		}

		store.Dir = dir
	}

	rec, err := store.Init()
	if err != nil {
		return err
	}

	o.Println(rec.Path)

	return nil
}
