// Package commands implements the CLI commands for the wdabuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wdabuild/internal/adapters/config"
	"go.trai.ch/wdabuild/internal/app"
	"go.trai.ch/wdabuild/internal/build"
	"go.trai.ch/wdabuild/internal/core/domain"
)

// CLI represents the command line interface for wdabuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions, stdout io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "wdabuild",
		Short:         "Build and package Appium WebDriverAgent for real iOS devices",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runBuild,
	}

	flags := rootCmd.Flags()
	flags.StringP("development-team-id", "t", "", "Apple development team id used for signing")
	flags.StringP("wda-version", "w", domain.DefaultWDAVersion, "appium-webdriveragent version to build")
	flags.BoolP("verbosity", "v", false, "Print tool output and debug logs")
	flags.StringP("config", "c", config.DefaultFilename, "Settings file; optional unless set explicitly")
	flags.Bool("strict-patch", false, "Fail when the project file lacks the expected signing settings")
	flags.String("staging-root", "", "Directory for staging builds (default <tmp>/WDABuilder)")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	opts := app.BuildOptions{
		ConfigRequired: flags.Changed("config"),
	}
	opts.ConfigPath, _ = flags.GetString("config")

	if flags.Changed("development-team-id") {
		opts.TeamID, _ = flags.GetString("development-team-id")
	}
	if flags.Changed("wda-version") {
		opts.WDAVersion, _ = flags.GetString("wda-version")
	}
	if flags.Changed("staging-root") {
		opts.StagingRoot, _ = flags.GetString("staging-root")
	}
	opts.Verbose, _ = flags.GetBool("verbosity")
	opts.StrictPatch, _ = flags.GetBool("strict-patch")

	return c.app.Build(cmd.Context(), opts, cmd.OutOrStdout())
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
