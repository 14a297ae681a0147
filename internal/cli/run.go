package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"adr/internal/adr"
)

const (
	consumedOne = 1
	consumedTwo = 2
	helpFlag    = "--help"
)

// Config carries the per-invocation resolved settings handed to commands.
// Resolution happens once, here in the CLI layer; the core store never
// consults the environment itself.
type Config struct {
	WorkDir string // absolute working directory
	Dir     string // absolute records directory
	Editor  string // editor from .adr.json, may be empty
	Env     map[string]string
}

// Store builds a record store for the resolved directory.
func (c *Config) Store() *adr.Store {
	return &adr.Store{Dir: c.Dir, TemplatePath: c.Env[adr.EnvTemplate]}
}

// Run is the main entry point. Returns exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if env == nil {
		env = map[string]string{}
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	workDir := flags.workDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			fprintln(errOut, "error: cannot get working directory:", err)

			return 1
		}
	}

	if !filepath.IsAbs(workDir) {
		workDir, err = filepath.Abs(workDir)
		if err != nil {
			fprintln(errOut, "error:", err)

			return 1
		}
	}

	dir, err := adr.ResolveDir(workDir, env)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	project, err := adr.LoadProjectConfig(workDir)
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	cfg := &Config{
		WorkDir: workDir,
		Dir:     dir,
		Editor:  project.Editor,
		Env:     env,
	}

	commands := []*Command{
		InitCmd(cfg),
		NewCmd(cfg),
		LinkCmd(cfg),
		ListCmd(cfg),
		GenerateCmd(cfg),
		EditCmd(cfg),
		ConfigCmd(cfg),
	}

	if len(flags.remaining) == 0 {
		printUsage(out, commands)

		return 0
	}

	name := flags.remaining[0]
	rest := flags.remaining[1:]

	if name == "-h" || name == helpFlag || name == "help" {
		printUsage(out, commands)

		return 0
	}

	ioCtx := NewIO(out, errOut)

	for _, cmd := range commands {
		if cmd.Name() != name {
			continue
		}

		code := cmd.Run(ioCtx, rest)
		if fin := ioCtx.Finish(); code == 0 {
			code = fin
		}

		return code
	}

	fprintln(errOut, "error: unknown command:", name)
	printUsage(errOut, commands)

	return 1
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, "Usage: adr [-C <dir>] <command> [args]")
	fprintln(w)
	fprintln(w, "Manage architecture decision records.")
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Global flags:")
	fprintln(w, "  -C, --cwd <dir>    Run as if started in <dir>")
}

type globalFlags struct {
	workDir   string
	remaining []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	if arg == "-C" || arg == "--cwd" {
		if idx+1 >= len(args) {
			return 0, fmt.Errorf("flag requires an argument: %s", arg)
		}

		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok && arg != "-C" {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	return 0, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
