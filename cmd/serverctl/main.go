package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/outofforest/serverctl"
	"github.com/outofforest/serverctl/internal/cli"
	"github.com/outofforest/serverctl/lifecycle"
	"github.com/outofforest/serverctl/runner"
)

func main() {
	ctx := logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig))
	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	err := parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("command", parallel.Exit, func(ctx context.Context) error {
			return cli.Execute(ctx, args, newLifecycle)
		})
		spawn("signals", parallel.Exit, watchSignals)
		return nil
	})
	cli.Report(ctx, os.Stderr, err)
	_ = logger.Get(ctx).Sync()
	return cli.ExitCode(err)
}

func newLifecycle(_ context.Context, config serverctl.Config) (cli.Lifecycle, error) {
	return lifecycle.New(config, runner.New(runner.LocalExecutor{})), nil
}

type signalError struct {
	signal unix.Signal
}

func (e signalError) Error() string {
	return fmt.Sprintf("signal %s received", e.signal)
}

func (e signalError) ExitCode() int {
	return 128 + int(e.signal)
}

// watchSignals cancels the command when the operator interrupts serverctl.
func watchSignals(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGINT, unix.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case sig := <-sigCh:
		logger.Get(ctx).Info("Signal received, terminating", zap.Stringer("signal", sig))
		return signalError{signal: sig.(unix.Signal)}
	}
}
