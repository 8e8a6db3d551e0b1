package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orionlab/fluxconv/internal/spectral"
	"github.com/orionlab/fluxconv/internal/unit"
)

// ModelOptions holds flags for the model command.
type ModelOptions struct {
	*RootOptions
	Temperature float64
	Index       float64
	Flux        string
	At          string
	Eval        string
	To          string
	System      string
}

// ModelResult is the model command's output payload.
type ModelResult struct {
	Model     string   `json:"model"`
	Input     string   `json:"input"`
	Eval      string   `json:"eval"`
	Value     float64  `json:"value"`
	Unit      string   `json:"unit"`
	Magnitude *float64 `json:"magnitude,omitempty"`
	System    string   `json:"system,omitempty"`
}

func (r ModelResult) String() string {
	s := fmt.Sprintf("%s fitted to %s, at %s: %.6g %s", r.Model, r.Input, r.Eval, r.Value, r.Unit)
	if r.Magnitude != nil {
		s += fmt.Sprintf(" = %.4f mag (%s)", *r.Magnitude, r.System)
	}
	return s
}

// NewModelCommand creates the model command.
func NewModelCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ModelOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "model <blackbody|powerlaw>",
		Short: "Extrapolate a flux along a spectral model",
		Long: `Fit a spectral shape through an observed flux point and read off the
flux it implies at another wavelength.

Examples:
  fluxconv model blackbody --temperature 5500 \
      --flux "1 photlam" --at 0.5micron --eval 0.6micron --to erg/s/cm2/Hz
  fluxconv model powerlaw --index 0.25 \
      --flux "1e-23 W/m2/Hz" --at 1micron --eval 0.9micron --to Jy --system I`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Temperature, "temperature", 0, "blackbody temperature in Kelvin")
	cmd.Flags().Float64Var(&opts.Index, "index", 0, "power-law spectral index")
	cmd.Flags().StringVar(&opts.Flux, "flux", "", "observed flux, e.g. \"1e-13 Jy\" (required)")
	cmd.Flags().StringVar(&opts.At, "at", "", "wavelength of the observed flux (required)")
	cmd.Flags().StringVar(&opts.Eval, "eval", "", "wavelength to evaluate at (defaults to --at)")
	cmd.Flags().StringVar(&opts.To, "to", "", "output flux unit (defaults to the input unit)")
	cmd.Flags().StringVar(&opts.System, "system", "", "magnitude system to also report on")
	cmd.MarkFlagRequired("flux")
	cmd.MarkFlagRequired("at")

	return cmd
}

func runModel(opts *ModelOptions, kind string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	model, err := buildCLIModel(kind, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid model", err)
	}

	inFlux, err := unit.ParseValue(opts.Flux)
	if err != nil {
		return failCommand(formatter, err)
	}
	at, err := unit.ParseValue(opts.At)
	if err != nil {
		return failCommand(formatter, err)
	}

	eval := at
	if opts.Eval != "" {
		eval, err = unit.ParseValue(opts.Eval)
		if err != nil {
			return failCommand(formatter, err)
		}
	}

	outUnit := inFlux.Unit
	if opts.To != "" {
		outUnit, err = unit.ParseUnit(opts.To)
		if err != nil {
			return failCommand(formatter, err)
		}
	}

	fitted, err := model.NormalizeTo(inFlux, at)
	if err != nil {
		return failCommand(formatter, err)
	}
	formatter.VerboseLog("model normalized at %s", at)

	flux, err := fitted.Evaluate(eval)
	if err != nil {
		return failCommand(formatter, err)
	}
	out, err := flux.ConvertAt(outUnit, eval)
	if err != nil {
		return failCommand(formatter, err)
	}

	result := ModelResult{
		Model: kind,
		Input: fmt.Sprintf("%s at %s", inFlux, at),
		Eval:  eval.String(),
		Value: out.Val,
		Unit:  out.Unit.Symbol,
	}

	if opts.System != "" {
		reg, rerr := buildRegistry(opts.RootOptions)
		if rerr != nil {
			return WrapExitError(ExitCommandError, "loading magnitude systems", rerr)
		}
		m, merr := reg.FluxToMagnitude(opts.System, out)
		if merr != nil {
			return failCommand(formatter, merr)
		}
		result.Magnitude = &m.Val
		result.System = opts.System
	}

	if err := formatter.Success(result); err != nil {
		return err
	}

	recordHistory(opts.RootOptions, formatter, "model", result.Input, out.String(),
		fmt.Sprintf(`{"model":%q,"eval":%q,"system":%q}`, kind, result.Eval, opts.System))
	return nil
}

// buildCLIModel constructs the spectral model named on the command line.
func buildCLIModel(kind string, opts *ModelOptions) (spectral.Model, error) {
	switch kind {
	case "blackbody":
		return spectral.NewBlackbody(opts.Temperature)
	case "powerlaw":
		return spectral.NewPowerLaw(opts.Index), nil
	default:
		return nil, fmt.Errorf("unknown model %q (want blackbody or powerlaw)", kind)
	}
}
