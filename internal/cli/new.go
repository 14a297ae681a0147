package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adr/internal/adr"

	flag "github.com/spf13/pflag"
)

var errTitleRequired = errors.New("title is required")

// NewCmd returns the new command.
func NewCmd(cfg *Config) *Command {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.StringArrayP("supersede", "s", nil, "Number of a record the new one supersedes (repeatable)")
	fs.StringArrayP("link", "l", nil, "Link spec <number>:<forward text>:<reverse text> (repeatable)")
	fs.StringP("template", "T", "", "Path to a template file (overrides ADR_TEMPLATE)")

	return &Command{
		Flags: fs,
		Usage: "new [-s <n>] [-l <spec>] <title>...",
		Short: "Create a new decision record",
		Long: "Create a new decision record from the title words and print its path.\n" +
			"Superseded records get their status replaced by a supersede pair;\n" +
			"link specs add mutual annotations between records.",
		Exec: func(o *IO, args []string) error {
			return execNew(o, cfg, fs, args)
		},
	}
}

func execNew(o *IO, cfg *Config, fs *flag.FlagSet, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		prompted, err := promptTitle()
		if err != nil {
			return err
		}

		title = strings.TrimSpace(prompted)
	}

	if title == "" {
		return errTitleRequired
	}

	supersedeArgs, _ := fs.GetStringArray("supersede")

	supersedes := make([]int, 0, len(supersedeArgs))

	for _, raw := range supersedeArgs {
		number, err := strconv.Atoi(raw)
		if err != nil || number <= 0 {
			return fmt.Errorf("%w: supersede target %q is not a positive number", adr.ErrInvalidArgument, raw)
		}

		supersedes = append(supersedes, number)
	}

	linkArgs, _ := fs.GetStringArray("link")

	links := make([]adr.LinkSpec, 0, len(linkArgs))

	for _, raw := range linkArgs {
		spec, err := adr.ParseLinkSpec(raw)
		if err != nil {
			return err
		}

		links = append(links, spec)
	}

	store := cfg.Store()

	if templatePath, _ := fs.GetString("template"); templatePath != "" {
		store.TemplatePath = templatePath
	}

	rec, err := store.Create(adr.CreateOptions{
		Title:      title,
		Supersedes: supersedes,
		Links:      links,
	})
	if err != nil {
		if rec.Path == "" {
			return err
		}

		// The record was written; only some supersede/link targets
		// failed. Surface each one without discarding the new record.
		o.Warn(err.Error())
	}

	launchEditorIfConfigured(o, cfg, rec.Path)

	o.Println(rec.Path)

	return nil
}
