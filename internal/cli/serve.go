package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/forfeit/internal/scheduler"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the enforcement sweep every day until interrupted",
		Long: `Runs the enforcement sweep once at startup and again whenever the
calendar date changes in FORFEIT_TIMEZONE. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				return runServe(cmd.Context(), app)
			})
		},
	}

	return cmd
}

func runServe(parent context.Context, app *App) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, err := scheduler.New(&scheduler.Config{
		Interval: app.Config.SweepInterval,
		Location: app.Config.Location,
		Clock:    app.Clock,
		Job:      app.Penalties.RunEnforcementSweep,
		Logger:   app.Logger,
	})
	if err != nil {
		return err
	}

	if err := runner.Start(ctx); err != nil {
		return err
	}
	app.Logger.Info("scheduler started", "interval", app.Config.SweepInterval.String(), "timezone", app.Config.Location.String())

	<-ctx.Done()
	runner.Stop()

	app.Logger.Info("scheduler stopped")
	return nil
}
