// Package cli implements the pipeloop command-line interface.
//
// The CLI loads puzzle text from a file or stdin, traces the pipe loop and
// prints the farthest-point step count and the enclosed cell count. It is
// built on cobra, logs through charmbracelet/log, and reads an optional TOML
// configuration file.
//
// # Commands
//
//   - solve:    print "steps=<n> interior=<m>"
//   - steps:    print the farthest-point step count
//   - interior: print the enclosed cell count
//
// Each command takes one optional argument, a file path; "-" or no argument
// reads stdin.
//
// # Logging
//
// --verbose (-v) switches the logger to debug level. The logger travels in
// the command context.
package cli

import (
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// normally called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// flags holds the global command-line flags.
type flags struct {
	config  string
	verbose bool
	edges   string
	workers int
	verify  bool
}

// app carries the resolved settings shared by the subcommands.
type app struct {
	out   io.Writer
	flags flags
	cfg   Config
}

// NewRootCommand builds the pipeloop command tree. Results are written to
// out and log lines to logOut.
func NewRootCommand(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out, cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           "pipeloop",
		Short:         "Trace a pipe loop and count the tiles it encloses",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.flags.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			return a.resolveConfig(cmd, logger)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("pipeloop %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.config, "config", "c", "", "path to a TOML config file")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&a.flags.edges, "edges", "down", `vertical-edge class for the row scan: "down" (|F7) or "up" (|LJ)`)
	pf.IntVar(&a.flags.workers, "workers", 1, "rows scanned concurrently")
	pf.BoolVar(&a.flags.verify, "verify", false, "cross-check the interior count with Pick's theorem and a flood fill")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newStepsCmd(a))
	root.AddCommand(newInteriorCmd(a))

	return root
}

// resolveConfig loads the config file, if any, and applies explicitly set
// flags on top of it.
func (a *app) resolveConfig(cmd *cobra.Command, logger *charmlog.Logger) error {
	if a.flags.config != "" {
		cfg, err := LoadConfig(a.flags.config)
		if err != nil {
			return err
		}
		a.cfg = cfg
		logger.Debug("loaded config", "path", a.flags.config)
	}
	fs := cmd.Flags()
	if fs.Changed("edges") {
		a.cfg.Edges = a.flags.edges
	}
	if fs.Changed("workers") {
		a.cfg.Workers = a.flags.workers
	}
	if fs.Changed("verify") {
		a.cfg.Verify = a.flags.verify
	}
	if _, err := a.cfg.options(); err != nil {
		return err
	}
	logger.Debug("settings", "edges", a.cfg.Edges, "workers", a.cfg.Workers, "verify", a.cfg.Verify)
	return nil
}
