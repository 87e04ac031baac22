// Package cli maps serverctl sub-commands to lifecycle actions.
package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/outofforest/serverctl"
)

// Lifecycle is the set of actions the sub-commands are dispatched to.
type Lifecycle interface {
	Build(ctx context.Context, disableHTTPS bool) error
	Run(ctx context.Context) error
	Test(ctx context.Context) error
	DockerBuild(ctx context.Context) error
	DockerRun(ctx context.Context) error
}

// NewLifecycleFunc creates lifecycle actions once the configuration is resolved.
type NewLifecycleFunc func(ctx context.Context, config serverctl.Config) (Lifecycle, error)

// ActionFunc executes the sub-command.
type ActionFunc func(ctx context.Context, lifecycle Lifecycle, flags *pflag.FlagSet) error

// Command defines a sub-command.
type Command struct {
	Fn          ActionFunc
	Description string
	Flags       func(flags *pflag.FlagSet)
}

const flagDisableHTTPS = "disable-https"

// Commands is the definition of sub-commands available in serverctl. The order is the order of help output.
var Commands = []struct {
	Name string
	Command
}{
	{Name: "build", Command: Command{
		Fn: func(ctx context.Context, lifecycle Lifecycle, flags *pflag.FlagSet) error {
			disableHTTPS, err := flags.GetBool(flagDisableHTTPS)
			if err != nil {
				return errors.WithStack(err)
			}
			return lifecycle.Build(ctx, disableHTTPS)
		},
		Description: "Build the project locally",
		Flags: func(flags *pflag.FlagSet) {
			flags.Bool(flagDisableHTTPS, false, "Disable HTTPS support in the build")
		},
	}},
	{Name: "run", Command: Command{
		Fn: func(ctx context.Context, lifecycle Lifecycle, _ *pflag.FlagSet) error {
			return lifecycle.Run(ctx)
		},
		Description: "Run the main program locally",
	}},
	{Name: "test", Command: Command{
		Fn: func(ctx context.Context, lifecycle Lifecycle, _ *pflag.FlagSet) error {
			return lifecycle.Test(ctx)
		},
		Description: "Run the unit tests locally",
	}},
	{Name: "docker-build", Command: Command{
		Fn: func(ctx context.Context, lifecycle Lifecycle, _ *pflag.FlagSet) error {
			return lifecycle.DockerBuild(ctx)
		},
		Description: "Build the Docker image",
	}},
	{Name: "docker-run", Command: Command{
		Fn: func(ctx context.Context, lifecycle Lifecycle, _ *pflag.FlagSet) error {
			return lifecycle.DockerRun(ctx)
		},
		Description: "Run the Docker container",
	}},
}

// NewRootCommand returns the root command of serverctl.
// Missing or unknown sub-command prints help and succeeds.
func NewRootCommand(newLifecycle NewLifecycleFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "serverctl",
		Short: "Build, run, and test the toy HTTP server (local or Docker).",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	// unknown sub-command prints help even if followed by flags
	rootCmd.FParseErrWhitelist.UnknownFlags = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd, err)
	})
	addConfigFlags(rootCmd.PersistentFlags())

	for _, c := range Commands {
		c := c
		cmd := &cobra.Command{
			Use:   c.Name,
			Short: c.Description,
			Args: func(cmd *cobra.Command, args []string) error {
				if err := cobra.NoArgs(cmd, args); err != nil {
					return newUsageError(cmd, err)
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				config, err := loadConfig(cmd.Flags())
				if err != nil {
					return err
				}
				lifecycle, err := newLifecycle(cmd.Context(), config)
				if err != nil {
					return err
				}
				return c.Fn(cmd.Context(), lifecycle, cmd.Flags())
			},
		}
		if c.Flags != nil {
			c.Flags(cmd.Flags())
		}
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

// Execute runs the command selected by args.
func Execute(ctx context.Context, args []string, newLifecycle NewLifecycleFunc) error {
	rootCmd := NewRootCommand(newLifecycle)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
