package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orionlab/fluxconv/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// HistoryList is the history command's output payload.
type HistoryList struct {
	Calculations []store.Calculation `json:"calculations"`
}

func (l HistoryList) String() string {
	if len(l.Calculations) == 0 {
		return "history is empty"
	}
	var b strings.Builder
	for _, c := range l.Calculations {
		fmt.Fprintf(&b, "%s  %-8s %s -> %s\n",
			c.CreatedAt.Format("2006-01-02 15:04:05"), c.Command, c.Input, c.Output)
	}
	return strings.TrimRight(b.String(), "\n")
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent calculations",
		Long: `Show recent calculations recorded in the history database.

History is written only when --history names a database path, e.g.:
  fluxconv --history ~/.fluxconv/history.db mag 1e-13 Jy --system AB
  fluxconv --history ~/.fluxconv/history.db history --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum records to show (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.HistoryPath == "" {
		return WrapExitError(ExitCommandError, "history requires --history <path>", nil)
	}

	s, err := store.Open(opts.HistoryPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening history database", err)
	}
	defer s.Close()

	calcs, err := s.ListCalculations(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "reading history", err)
	}

	return formatter.Success(HistoryList{Calculations: calcs})
}
