package lifecycle

import (
	"context"
	"os"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/serverctl"
	"github.com/outofforest/serverctl/runner"
)

const (
	cmakeTool = "cmake"
	makeTool  = "make"
	ctestTool = "ctest"

	// httpsOption is the cmake option excluding HTTPS support from the server.
	httpsOption = "DISABLE_HTTPS"
)

// PreconditionError is returned when action can't be executed in the current state of the build directory.
type PreconditionError struct {
	Message string
}

func (e PreconditionError) Error() string {
	return e.Message
}

// ExitCode returns the exit code reported for unmet precondition.
func (e PreconditionError) ExitCode() int {
	return 1
}

// New returns lifecycle actions.
func New(config serverctl.Config, r *runner.Runner) *Actions {
	return &Actions{
		config: config,
		runner: r,
	}
}

// Actions implements the lifecycle of the server.
type Actions struct {
	config serverctl.Config
	runner *runner.Runner
}

// Build configures the project and compiles the server.
func (a *Actions) Build(ctx context.Context, disableHTTPS bool) error {
	ctx = logger.With(ctx, zap.Bool("disableHTTPS", disableHTTPS))

	if err := os.MkdirAll(a.config.BuildDir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	if err := a.runner.Run(ctx, runner.Command{
		Args: []string{cmakeTool, a.config.SourceDir, cmakeOption(httpsOption, disableHTTPS)},
		Dir:  a.config.BuildDir,
	}); err != nil {
		return err
	}

	if err := a.runner.Run(ctx, runner.Command{
		Args: []string{makeTool},
		Dir:  a.config.BuildDir,
	}); err != nil {
		return err
	}

	logger.Get(ctx).Info("Server built", zap.String("executable", a.config.ExecutablePath()))
	return nil
}

// Run starts the server built previously.
func (a *Actions) Run(ctx context.Context) error {
	exePath := a.config.ExecutablePath()
	if info, err := os.Stat(exePath); err != nil || !info.Mode().IsRegular() {
		return errors.WithStack(PreconditionError{Message: "Executable not found. Please build first."})
	}

	return a.runner.Run(ctx, runner.Command{Args: []string{exePath}})
}

// Test runs the unit tests.
func (a *Actions) Test(ctx context.Context) error {
	if info, err := os.Stat(a.config.BuildDir); err != nil || !info.IsDir() {
		return errors.WithStack(PreconditionError{Message: "Build directory not found. Please build first."})
	}

	return a.runner.Run(ctx, runner.Command{
		Args: []string{ctestTool, "--verbose"},
		Dir:  a.config.BuildDir,
	})
}

func cmakeOption(name string, enabled bool) string {
	if enabled {
		return "-D" + name + "=ON"
	}
	return "-D" + name + "=OFF"
}
