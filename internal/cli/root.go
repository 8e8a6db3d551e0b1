package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orionlab/fluxconv/internal/photom"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// SystemsDir optionally names a directory of CUE magnitude-system
	// definitions loaded on top of the builtins.
	SystemsDir string

	// HistoryPath optionally names the SQLite calculation history.
	// Empty disables history.
	HistoryPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the fluxconv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fluxconv",
		Short: "fluxconv - astronomical flux unit conversions",
		Long: `Convert astronomical spectral flux densities between units, extrapolate
them along a spectral model (blackbody or power law), and express them as
magnitudes on a photometric system.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.SystemsDir, "systems", "", "directory of CUE magnitude-system definitions")
	cmd.PersistentFlags().StringVar(&opts.HistoryPath, "history", "", "path to the calculation history database")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewMagCommand(opts))
	cmd.AddCommand(NewModelCommand(opts))
	cmd.AddCommand(NewSystemsCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// buildRegistry assembles the magnitude-system registry for a command run:
// the builtin systems plus any CUE definitions from --systems.
func buildRegistry(opts *RootOptions) (*photom.Registry, error) {
	reg := photom.Builtin()
	if opts.SystemsDir == "" {
		return reg, nil
	}
	if err := LoadSystems(opts.SystemsDir, reg); err != nil {
		return nil, err
	}
	return reg, nil
}
