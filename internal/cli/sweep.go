package cli

import (
	"fmt"

	"github.com/KirkDiggler/forfeit/internal/period"
	penaltyService "github.com/KirkDiggler/forfeit/internal/services/penalty"
	"github.com/spf13/cobra"
)

// SweepOptions holds flags for the sweep command
type SweepOptions struct {
	Date string
}

// NewSweepCommand creates the sweep command
func NewSweepCommand(factory AppFactory) *cobra.Command {
	opts := &SweepOptions{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the enforcement sweep once",
		Long: `Evaluates every active obligation against the period that concluded
before the given date (default: today) and records penalties for misses.

Example:
  forfeit sweep
  forfeit sweep --date 2025-04-07`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				return runSweep(cmd, app, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "evaluate as if today were this date (YYYY-MM-DD)")

	return cmd
}

func runSweep(cmd *cobra.Command, app *App, opts *SweepOptions) error {
	input := &penaltyService.SweepInput{}
	if opts.Date != "" {
		today, err := period.ParseDate(opts.Date, app.Config.Location)
		if err != nil {
			return err
		}
		input.Today = today
	}

	output, err := app.Penalties.Sweep(cmd.Context(), input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "date: %s\n", output.Today.Format(period.DateLayout))
	fmt.Fprintf(out, "evaluated: %d\n", output.Evaluated)
	fmt.Fprintf(out, "penalties created: %d\n", output.PenaltiesCreated)
	fmt.Fprintf(out, "already settled: %d\n", output.DuplicatesSkipped)

	if len(output.Failures) > 0 {
		for _, failure := range output.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed %s: %v\n", failure.ObligationID, failure.Err)
		}
		return fmt.Errorf("%d obligation(s) failed", len(output.Failures))
	}

	return nil
}
