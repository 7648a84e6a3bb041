package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

const inputArg = "[file|-]"

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve " + inputArg,
		Short: "Print the farthest-point steps and the interior tile count",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := a.countOptions(cmd)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := pipeloop.Solve(text, opts...)
			if err != nil {
				return err
			}
			prog.done("solved", "steps", res.Steps, "interior", res.Interior)

			if a.cfg.Verify {
				g, err := pipegrid.Parse(text)
				if err != nil {
					return err
				}
				if err := a.verify(cmd, g); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(a.out, "steps=%d interior=%d\n", res.Steps, res.Interior)
			return err
		},
	}
}

func newStepsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "steps " + inputArg,
		Short: "Print the number of steps to the farthest point of the loop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd, args)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			n, err := pipeloop.FurthestPointSteps(g)
			if err != nil {
				return err
			}
			prog.done("traced loop", "steps", n)

			_, err = fmt.Fprintln(a.out, n)
			return err
		},
	}
}

func newInteriorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interior " + inputArg,
		Short: "Print the number of tiles enclosed by the loop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(cmd, args)
			if err != nil {
				return err
			}
			opts, err := a.countOptions(cmd)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			n, err := pipeloop.InteriorTileCount(g, opts...)
			if err != nil {
				return err
			}
			prog.done("counted interior", "interior", n)

			if a.cfg.Verify {
				if err := a.verify(cmd, g); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(a.out, n)
			return err
		},
	}
}

// countOptions turns the resolved config into interior options bound to the
// command context.
func (a *app) countOptions(cmd *cobra.Command) ([]interior.Option, error) {
	opts, err := a.cfg.options()
	if err != nil {
		return nil, err
	}
	return append(opts, interior.WithContext(cmd.Context())), nil
}

// verify runs the three-way interior cross-check.
func (a *app) verify(cmd *cobra.Command, g *pipegrid.Grid) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	if err := pipeloop.Verify(g); err != nil {
		logger.Error("cross-check failed", "err", err)
		return err
	}
	prog.done("cross-check passed")
	return nil
}

// loadGrid reads and parses the command input.
func loadGrid(cmd *cobra.Command, args []string) (*pipegrid.Grid, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	g, err := pipegrid.Parse(text)
	if err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("parsed grid",
		"width", g.Width, "height", g.Height, "start", g.Start().Pos.String())
	return g, nil
}

// readInput returns the contents of the file named by args[0], or stdin when
// there is no argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
		src  = "stdin"
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src = args[0]
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	loggerFromContext(cmd.Context()).Debug("loaded input", "source", src, "bytes", len(data))
	return string(data), nil
}
