package cli

import (
	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

// ConfigCmd returns the config command.
func ConfigCmd(cfg *Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("config", flag.ContinueOnError),
		Usage: "config",
		Short: "Print the resolved configuration",
		Long:  "Print the resolved records directory, template source, and editor.",
		Exec: func(o *IO, _ []string) error {
			return execConfig(o, cfg)
		},
	}
}

func execConfig(o *IO, cfg *Config) error {
	o.Println("dir:", cfg.Dir)

	template := cfg.Env[adr.EnvTemplate]
	if template == "" {
		template = "(store-local or bundled)"
	}

	o.Println("template:", template)

	editor := cfg.Editor
	if editor == "" {
		editor = "(unset)"
	}

	o.Println("editor:", editor)

	return nil
}
