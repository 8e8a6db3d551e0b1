package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// SystemInfo is one row of the systems command's output.
type SystemInfo struct {
	Name                string `json:"name"`
	ZeroPoint           string `json:"zero_point"`
	ReferenceWavelength string `json:"reference_wavelength,omitempty"`
}

// SystemList is the systems command's output payload.
type SystemList struct {
	Systems []SystemInfo `json:"systems"`
}

func (l SystemList) String() string {
	var b strings.Builder
	for _, s := range l.Systems {
		fmt.Fprintf(&b, "%-8s zero point %s", s.Name, s.ZeroPoint)
		if s.ReferenceWavelength != "" {
			fmt.Fprintf(&b, " at %s", s.ReferenceWavelength)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// NewSystemsCommand creates the systems command.
func NewSystemsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List the registered magnitude systems",
		Long: `List the registered magnitude systems: the builtins plus any loaded
from --systems CUE definitions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSystems(rootOpts, cmd)
		},
	}

	return cmd
}

func runSystems(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reg, err := buildRegistry(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading magnitude systems", err)
	}

	list := SystemList{}
	for _, name := range reg.Names() {
		sys, err := reg.System(name)
		if err != nil {
			return err
		}
		info := SystemInfo{
			Name:      sys.Name,
			ZeroPoint: sys.ZeroPoint.String(),
		}
		if !sys.ReferenceWavelength.IsZero() {
			info.ReferenceWavelength = sys.ReferenceWavelength.String()
		}
		list.Systems = append(list.Systems, info)
	}

	return formatter.Success(list)
}
