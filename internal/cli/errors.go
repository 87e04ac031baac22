package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outofforest/serverctl/lifecycle"
	"github.com/outofforest/serverctl/runner"
)

// UsageError is returned when command line arguments are invalid.
type UsageError struct {
	Err   error
	Usage string
}

func newUsageError(cmd *cobra.Command, err error) error {
	return errors.WithStack(UsageError{
		Err:   err,
		Usage: cmd.UsageString(),
	})
}

func (e UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the next error in the error chain.
func (e UsageError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code used for invalid arguments.
func (e UsageError) ExitCode() int {
	return 2
}

// ExitCode returns the process exit code for the error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}

// Report prints the error to the operator. Usage errors are written to w together with the usage.
func Report(ctx context.Context, w io.Writer, err error) {
	if err == nil {
		return
	}

	log := logger.Get(ctx)

	var usageErr UsageError
	var precondErr lifecycle.PreconditionError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(w, "Error: %s\n%s", usageErr.Err, usageErr.Usage)
	case errors.As(err, &precondErr):
		log.Error(precondErr.Message)
	case errors.As(err, &runner.ExitError{}), errors.As(err, &runner.StartError{}):
		// already reported by the runner
	case errors.Is(err, context.Canceled):
		log.Info("Command canceled")
	default:
		log.Error("Command failed", zap.Error(err))
	}
}
