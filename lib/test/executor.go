package test

import (
	"context"
	"sync"

	"github.com/outofforest/serverctl/runner"
)

// Result is the outcome reported by Executor for a program.
type Result struct {
	Code int
	Err  error
}

// Executor records executed commands instead of starting them.
type Executor struct {
	// Results maps program names to results reported for them. Programs not present there succeed.
	Results map[string]Result

	mu       sync.Mutex
	commands []runner.Command
}

// Exec records the command.
func (e *Executor) Exec(ctx context.Context, cmd runner.Command) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.commands = append(e.commands, runner.Command{
		Args: append([]string{}, cmd.Args...),
		Dir:  cmd.Dir,
	})

	result := e.Results[cmd.Args[0]]
	return result.Code, result.Err
}

// Commands returns recorded commands.
func (e *Executor) Commands() []runner.Command {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]runner.Command{}, e.commands...)
}
