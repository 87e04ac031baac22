package runner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/serverctl/lib/test"
	"github.com/outofforest/serverctl/runner"
)

func TestLocalExecutorSuccess(t *testing.T) {
	requireT := require.New(t)
	ctx, _ := test.Context(t)

	stdout := &bytes.Buffer{}
	code, err := runner.LocalExecutor{Stdout: stdout}.Exec(ctx, runner.Command{
		Args: []string{"sh", "-c", "echo hello"},
	})
	requireT.NoError(err)
	requireT.Zero(code)
	requireT.Equal("hello\n", stdout.String())
}

func TestLocalExecutorDir(t *testing.T) {
	requireT := require.New(t)
	ctx, _ := test.Context(t)

	dir := t.TempDir()
	requireT.NoError(os.WriteFile(filepath.Join(dir, "marker"), nil, 0o600))

	code, err := runner.LocalExecutor{}.Exec(ctx, runner.Command{
		Args: []string{"sh", "-c", "test -f marker"},
		Dir:  dir,
	})
	requireT.NoError(err)
	requireT.Zero(code)
}

func TestLocalExecutorExitCode(t *testing.T) {
	requireT := require.New(t)
	ctx, _ := test.Context(t)

	code, err := runner.LocalExecutor{}.Exec(ctx, runner.Command{Args: []string{"sh", "-c", "exit 3"}})
	requireT.NoError(err)
	requireT.Equal(3, code)
}

func TestLocalExecutorSignal(t *testing.T) {
	requireT := require.New(t)
	ctx, _ := test.Context(t)

	code, err := runner.LocalExecutor{}.Exec(ctx, runner.Command{Args: []string{"sh", "-c", "kill -KILL $$"}})
	requireT.NoError(err)
	requireT.Equal(128+9, code)
}

func TestLocalExecutorNotFound(t *testing.T) {
	requireT := require.New(t)
	ctx, _ := test.Context(t)

	_, err := runner.LocalExecutor{}.Exec(ctx, runner.Command{Args: []string{"serverctl-program-which-does-not-exist"}})
	requireT.Error(err)
}
