package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Command is the command line of an external program.
type Command struct {
	// Args holds the program name followed by its arguments.
	Args []string

	// Dir is the working directory of the program. Empty value means the current one.
	Dir string
}

// String returns the space-joined command line.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Executor starts external programs.
type Executor interface {
	// Exec runs the command and blocks until it exits. Exit code is returned if the program was started,
	// error is returned if it wasn't.
	Exec(ctx context.Context, cmd Command) (int, error)
}

// ExitError is returned when program exits with non-zero code.
type ExitError struct {
	Command string
	Code    int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("command '%s' exited with code %d", e.Command, e.Code)
}

// ExitCode returns the exit code of the program.
func (e ExitError) ExitCode() int {
	return e.Code
}

// StartError is returned when program can't be found or started.
type StartError struct {
	Command string
	Err     error
}

func (e StartError) Error() string {
	return fmt.Sprintf("starting command '%s' failed: %s", e.Command, e.Err)
}

// Unwrap returns the next error in the error chain.
func (e StartError) Unwrap() error {
	return e.Err
}

// ExitCode returns the generic failure code.
func (e StartError) ExitCode() int {
	return 1
}

// New returns new runner.
func New(executor Executor) *Runner {
	return &Runner{
		executor: executor,
	}
}

// Runner executes commands one by one.
type Runner struct {
	executor Executor
}

// Run executes the command and waits until it exits.
// Non-zero exit code is reported as ExitError, failure to start the program as StartError.
// If ctx is canceled, failure is reported as the context error.
func (r *Runner) Run(ctx context.Context, cmd Command) error {
	if len(cmd.Args) == 0 {
		return errors.New("command is empty")
	}

	cmdLine := cmd.String()
	ctx = logger.With(ctx, zap.String("command", cmdLine))
	if cmd.Dir != "" {
		ctx = logger.With(ctx, zap.String("dir", cmd.Dir))
	}
	log := logger.Get(ctx)
	log.Info("Running command")

	code, err := r.executor.Exec(ctx, cmd)
	if (err != nil || code != 0) && ctx.Err() != nil {
		log.Info("Command interrupted")
		return errors.WithStack(ctx.Err())
	}
	if err != nil {
		log.Error("Command could not be started", zap.Error(err))
		return errors.WithStack(StartError{Command: cmdLine, Err: err})
	}
	if code != 0 {
		log.Error("Command failed", zap.Int("exitCode", code))
		return errors.WithStack(ExitError{Command: cmdLine, Code: code})
	}
	return nil
}
