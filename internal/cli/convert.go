package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orionlab/fluxconv/internal/unit"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To string
	At string
}

// ConversionResult is the convert command's output payload.
type ConversionResult struct {
	Input string  `json:"input"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	At    string  `json:"at,omitempty"`
}

func (r ConversionResult) String() string {
	s := fmt.Sprintf("%s = %.6g %s", r.Input, r.Value, r.Unit)
	if r.At != "" {
		s += fmt.Sprintf(" (at %s)", r.At)
	}
	return s
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <value> <unit>",
		Short: "Convert a quantity to another unit",
		Long: `Convert a quantity to another unit.

Conversions between flux conventions (per-frequency, per-wavelength, photon
flux) depend on photon energy; supply the wavelength or frequency with --at.

Examples:
  fluxconv convert 1e-13 Jy --to W/m2/Hz
  fluxconv convert 1 Jy --to photlam --at 0.55micron
  fluxconv convert 0.5 micron --to GHz`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "target unit (required)")
	cmd.Flags().StringVar(&opts.At, "at", "", "wavelength or frequency context, e.g. 0.55micron")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(opts *ConvertOptions, valueArg, unitArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	in, err := unit.ParseValue(valueArg + " " + unitArg)
	if err != nil {
		return failCommand(formatter, err)
	}
	target, err := unit.ParseUnit(opts.To)
	if err != nil {
		return failCommand(formatter, err)
	}

	at := unit.Value{}
	if opts.At != "" {
		at, err = unit.ParseValue(opts.At)
		if err != nil {
			return failCommand(formatter, err)
		}
	}

	formatter.VerboseLog("converting %s to %s", in, target.Symbol)

	out, err := in.ConvertAt(target, at)
	if err != nil {
		return failCommand(formatter, err)
	}

	result := ConversionResult{
		Input: in.String(),
		Value: out.Val,
		Unit:  out.Unit.Symbol,
		At:    opts.At,
	}
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordHistory(opts.RootOptions, formatter, "convert", in.String(), out.String(),
		fmt.Sprintf(`{"to":%q,"at":%q}`, opts.To, opts.At))
	return nil
}
