package cli

import (
	"errors"

	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

// ListCmd returns the list command.
func ListCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("list", flag.ContinueOnError),
		Usage: "list",
		Short: "List decision record files",
		Long:  "Print the path of every decision record, in directory-listing order.",
		Exec: func(o *IO, _ []string) error {
			return execList(o, cfg)
		},
	}
}

func execList(o *IO, cfg *Config) error {
	records, err := cfg.Store().List()
	if err != nil {
		// A missing directory is an empty store, not a failure: number
		// assignment and listing both continue from nothing.
		if !errors.Is(err, adr.ErrStoreMissing) {
			return err
		}

		o.Warn(err.Error())
	}

	for _, rec := range records {
		o.Println(rec.Path)
	}

	return nil
}
