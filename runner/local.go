package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/outofforest/libexec"
	"github.com/pkg/errors"
)

var _ Executor = LocalExecutor{}

// LocalExecutor executes programs on the local machine.
// Nil streams are replaced by the ones of the current process.
type LocalExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Exec executes the program.
func (e LocalExecutor) Exec(ctx context.Context, cmd Command) (int, error) {
	if len(cmd.Args) == 0 {
		return 0, errors.New("command is empty")
	}

	c := exec.Command(cmd.Args[0], cmd.Args[1:]...)
	c.Dir = cmd.Dir
	c.Stdin = e.Stdin
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	c.Stdout = e.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = e.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	err := libexec.Exec(ctx, c)
	if err == nil {
		return 0, nil
	}

	// process state is set only if the program was started
	if c.ProcessState != nil && !c.ProcessState.Success() {
		return exitCode(c.ProcessState), nil
	}
	return 0, err
}

func exitCode(state *os.ProcessState) int {
	// shells report programs killed by signal this way
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return state.ExitCode()
}
