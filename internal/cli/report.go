package cli

import (
	"context"
	"errors"

	"github.com/orionlab/fluxconv/internal/photom"
	"github.com/orionlab/fluxconv/internal/store"
	"github.com/orionlab/fluxconv/internal/unit"
)

// errorCode maps library errors onto their structured code for CLI output.
func errorCode(err error) string {
	var ce *unit.ConversionError
	if errors.As(err, &ce) {
		return string(ce.Code)
	}
	var re *photom.RegistryError
	if errors.As(err, &re) {
		return string(re.Code)
	}
	return "ERROR"
}

// failCommand renders a computation error through the formatter and returns
// an ExitError carrying the failure exit code. The caller's main does not
// print ExitFailure errors again.
func failCommand(f *OutputFormatter, err error) error {
	f.Error(errorCode(err), err.Error())
	return WrapExitError(ExitFailure, "computation failed", err)
}

// recordHistory appends a finished calculation to the history database when
// --history is set. History is best effort: a failure is reported in verbose
// mode but never fails the command that already produced its answer.
func recordHistory(opts *RootOptions, f *OutputFormatter, command, input, output, detail string) {
	if opts.HistoryPath == "" {
		return
	}

	s, err := store.Open(opts.HistoryPath)
	if err != nil {
		f.VerboseLog("history: %v", err)
		return
	}
	defer s.Close()

	calc := store.NewCalculation(command, input, output, detail)
	if err := s.WriteCalculation(context.Background(), calc); err != nil {
		f.VerboseLog("history: %v", err)
	}
}
