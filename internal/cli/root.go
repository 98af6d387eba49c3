// Package cli implements the forfeit command line
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command wired to the environment
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithFactory(DefaultAppFactory)
}

// NewRootCommandWithFactory creates the root command using the given App factory
func NewRootCommandWithFactory(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forfeit",
		Short: "forfeit - keep your streak or pay up",
		Long: `Tracks recurring obligations by period and levies penalties
when a daily, weekly or monthly period passes without a completion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand(factory))
	cmd.AddCommand(NewSweepCommand(factory))
	cmd.AddCommand(NewSummaryCommand(factory))
	cmd.AddCommand(NewSettleCommand(factory))
	cmd.AddCommand(NewCompleteCommand(factory))
	cmd.AddCommand(NewStatsCommand(factory))

	return cmd
}

// withApp builds the App, runs fn and closes the App afterwards
func withApp(cmd *cobra.Command, factory AppFactory, fn func(app *App) error) error {
	app, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			app.Logger.Error("error closing connections", "error", closeErr)
		}
	}()

	return fn(app)
}
