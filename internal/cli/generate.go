package cli

import (
	"errors"
	"fmt"

	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

var errGenerateTarget = errors.New("generate target must be toc or graph")

// GenerateCmd returns the generate command.
func GenerateCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("generate", flag.ContinueOnError),
		Usage: "generate <toc|graph>",
		Short: "Generate the record index or link graph",
		Long: "generate toc rewrites " + adr.IndexFileName + " in the records directory, listing\n" +
			"every record in directory-listing order.\n" +
			"generate graph prints the link graph in Graphviz dot form.",
		Exec: func(o *IO, args []string) error {
			return execGenerate(o, cfg, args)
		},
	}
}

func execGenerate(o *IO, cfg *Config, args []string) error {
	if len(args) != 1 {
		return errGenerateTarget
	}

	store := cfg.Store()

	switch args[0] {
	case "toc":
		path, err := store.RegenerateIndex()
		if err != nil {
			return err
		}

		o.Println(path)

		return nil
	case "graph":
		dot, err := store.Graph()
		if err != nil {
			return err
		}

		o.Printf("%s", dot)

		return nil
	default:
		return fmt.Errorf("%w, got %q", errGenerateTarget, args[0])
	}
}
