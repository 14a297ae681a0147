package cli

import (
	"fmt"
	"strconv"

	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

// LinkCmd returns the link command.
func LinkCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("link", flag.ContinueOnError),
		Usage: "link <from> <text> <to> [reverse-text]",
		Short: "Link two decision records",
		Long: "Append a link annotation to record <from>'s status referencing record\n" +
			"<to>. With a reverse-text argument the mirrored annotation is added to\n" +
			"<to> as well.",
		Exec: func(o *IO, args []string) error {
			return execLink(o, cfg, args)
		},
	}
}

const (
	linkArgsMin = 3
	linkArgsMax = 4
)

func execLink(_ *IO, cfg *Config, args []string) error {
	if len(args) < linkArgsMin || len(args) > linkArgsMax {
		return fmt.Errorf("%w: want <from> <text> <to> [reverse-text]", adr.ErrInvalidArgument)
	}

	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not a record number", adr.ErrInvalidArgument, args[0])
	}

	to, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: %q is not a record number", adr.ErrInvalidArgument, args[2])
	}

	reverseText := ""
	if len(args) == linkArgsMax {
		reverseText = args[3]
	}

	return cfg.Store().AddLink(from, args[1], to, reverseText)
}
