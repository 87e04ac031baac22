package lifecycle

import (
	"context"

	"github.com/outofforest/serverctl/runner"
)

const dockerTool = "docker"

// DockerBuild builds docker image of the server using the current directory as the build context.
func (a *Actions) DockerBuild(ctx context.Context) error {
	return a.runner.Run(ctx, runner.Command{
		Args: []string{dockerTool, "build", "-t", a.config.Image, "."},
	})
}

// DockerRun runs the container interactively. Missing image is reported by docker itself.
func (a *Actions) DockerRun(ctx context.Context) error {
	return a.runner.Run(ctx, runner.Command{
		Args: []string{dockerTool, "run", "-it", a.config.Image},
	})
}
