package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orionlab/fluxconv/internal/run"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Execute calculation scenario files",
		Long: `Execute one or more YAML calculation scenarios: an observed flux, an
optional spectral model, and the wavelength, unit, and magnitude system to
report the result in.

Example:
  fluxconv run examples/powerlaw-i-band.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runScenarios(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reg, err := buildRegistry(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading magnitude systems", err)
	}

	for _, path := range paths {
		scenario, err := run.LoadScenario(path)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("loading %s", path), err)
		}
		formatter.VerboseLog("executing scenario %s", scenario.Name)

		result, err := run.Execute(scenario, reg)
		if err != nil {
			return failCommand(formatter, err)
		}

		if opts.Format == "json" {
			if err := formatter.Success(result); err != nil {
				return err
			}
		} else {
			fmt.Fprint(formatter.Writer, result.Render())
		}

		recordHistory(opts, formatter, "run", path, result.Render(), "")
	}

	return nil
}
