package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/orionlab/fluxconv/internal/unit"
)

// MagOptions holds flags for the mag command.
type MagOptions struct {
	*RootOptions
	System  string
	Inverse bool
	To      string
	At      string
}

// MagnitudeResult is the mag command's output payload.
type MagnitudeResult struct {
	Input  string  `json:"input"`
	System string  `json:"system"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

func (r MagnitudeResult) String() string {
	return fmt.Sprintf("%s = %.4f %s (%s)", r.Input, r.Value, r.Unit, r.System)
}

// NewMagCommand creates the mag command.
func NewMagCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MagOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "mag <value> [<unit>]",
		Short: "Convert a flux density to a magnitude, or back",
		Long: `Convert a flux density to a magnitude on a photometric system.

With --inverse the value is read as a magnitude and converted back to the
system's zero-point flux unit (or --to).

Examples:
  fluxconv mag 1e-13 Jy --system AB
  fluxconv mag 1026.7 Jy --system I
  fluxconv mag --inverse 0.85 --system I --to Jy`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMag(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.System, "system", "AB", "magnitude system")
	cmd.Flags().BoolVar(&opts.Inverse, "inverse", false, "convert a magnitude back to a flux")
	cmd.Flags().StringVar(&opts.To, "to", "", "flux unit for the inverse conversion")
	cmd.Flags().StringVar(&opts.At, "at", "", "wavelength context for cross-convention fluxes")

	return cmd
}

func runMag(opts *MagOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reg, err := buildRegistry(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading magnitude systems", err)
	}

	if opts.Inverse {
		return runMagInverse(opts, args, formatter)
	}
	if len(args) != 2 {
		return WrapExitError(ExitCommandError, "mag needs <value> <unit> unless --inverse", nil)
	}

	flux, err := unit.ParseValue(args[0] + " " + args[1])
	if err != nil {
		return failCommand(formatter, err)
	}

	// A cross-convention flux may need --at when the system itself has no
	// reference wavelength.
	if opts.At != "" {
		at, perr := unit.ParseValue(opts.At)
		if perr != nil {
			return failCommand(formatter, perr)
		}
		sys, serr := reg.System(opts.System)
		if serr != nil {
			return failCommand(formatter, serr)
		}
		flux, err = flux.ConvertAt(sys.ZeroPoint.Unit, at)
		if err != nil {
			return failCommand(formatter, err)
		}
	}

	m, err := reg.FluxToMagnitude(opts.System, flux)
	if err != nil {
		return failCommand(formatter, err)
	}

	result := MagnitudeResult{
		Input:  flux.String(),
		System: opts.System,
		Value:  m.Val,
		Unit:   m.Unit.Symbol,
	}
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordHistory(opts.RootOptions, formatter, "mag", flux.String(), result.String(),
		fmt.Sprintf(`{"system":%q}`, opts.System))
	return nil
}

func runMagInverse(opts *MagOptions, args []string, formatter *OutputFormatter) error {
	reg, err := buildRegistry(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading magnitude systems", err)
	}

	magVal, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("magnitude %q is not a number", args[0]), err)
	}

	flux, err := reg.MagnitudeToFlux(opts.System, unit.New(magVal, unit.Mag))
	if err != nil {
		return failCommand(formatter, err)
	}

	if opts.To != "" {
		target, perr := unit.ParseUnit(opts.To)
		if perr != nil {
			return failCommand(formatter, perr)
		}
		sys, serr := reg.System(opts.System)
		if serr != nil {
			return failCommand(formatter, serr)
		}
		flux, err = flux.ConvertAt(target, sys.ReferenceWavelength)
		if err != nil {
			return failCommand(formatter, err)
		}
	}

	result := MagnitudeResult{
		Input:  fmt.Sprintf("%g mag", magVal),
		System: opts.System,
		Value:  flux.Val,
		Unit:   flux.Unit.Symbol,
	}
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordHistory(opts.RootOptions, formatter, "mag", result.Input, flux.String(),
		fmt.Sprintf(`{"system":%q,"inverse":true}`, opts.System))
	return nil
}
