package cli

import (
	"fmt"

	obligationService "github.com/KirkDiggler/forfeit/internal/services/obligation"
	"github.com/spf13/cobra"
)

// ObligationOptions holds flags shared by obligation commands
type ObligationOptions struct {
	CallerID     string
	ObligationID string
	Date         string
	Undo         bool
}

// NewCompleteCommand creates the complete command
func NewCompleteCommand(factory AppFactory) *cobra.Command {
	opts := &ObligationOptions{}

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark the period containing a date as done",
		Long: `Marks the period containing --date as completed and cancels any
penalty already levied for it. With --undo the period is cleared instead.

Example:
  forfeit complete --user u1 --obligation o1 --date 2025-04-03`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				return runComplete(cmd, app, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.CallerID, "user", "", "acting user ID (required)")
	cmd.Flags().StringVar(&opts.ObligationID, "obligation", "", "obligation ID (required)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "date inside the period (YYYY-MM-DD or RFC 3339, required)")
	cmd.Flags().BoolVar(&opts.Undo, "undo", false, "clear the period instead of completing it")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("obligation")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runComplete(cmd *cobra.Command, app *App, opts *ObligationOptions) error {
	out := cmd.OutOrStdout()

	if opts.Undo {
		output, err := app.Obligations.MarkIncomplete(cmd.Context(), &obligationService.MarkIncompleteInput{
			CallerID:     opts.CallerID,
			ObligationID: opts.ObligationID,
			Date:         opts.Date,
		})
		if err != nil {
			return err
		}
		if output.Removed {
			fmt.Fprintf(out, "cleared %s\n", output.PeriodKey)
		} else {
			fmt.Fprintf(out, "%s was not completed\n", output.PeriodKey)
		}
		return nil
	}

	output, err := app.Obligations.MarkComplete(cmd.Context(), &obligationService.MarkCompleteInput{
		CallerID:     opts.CallerID,
		ObligationID: opts.ObligationID,
		Date:         opts.Date,
	})
	if err != nil {
		return err
	}
	if output.Added {
		fmt.Fprintf(out, "completed %s\n", output.PeriodKey)
	} else {
		fmt.Fprintf(out, "%s was already completed\n", output.PeriodKey)
	}
	return nil
}

// NewStatsCommand creates the stats command
func NewStatsCommand(factory AppFactory) *cobra.Command {
	opts := &ObligationOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show streaks, completion rate and penalties of an obligation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				output, err := app.Obligations.GetStats(cmd.Context(), &obligationService.GetStatsInput{
					CallerID:     opts.CallerID,
					ObligationID: opts.ObligationID,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "completions: %d\n", output.TotalCompletions)
				fmt.Fprintf(out, "current streak: %d\n", output.CurrentStreak)
				fmt.Fprintf(out, "longest streak: %d\n", output.LongestStreak)
				fmt.Fprintf(out, "completion rate: %.1f%%\n", output.CompletionRate)
				fmt.Fprintf(out, "penalties: %d (%.2f)\n", output.TotalPenalties, output.TotalPenaltyAmount)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.CallerID, "user", "", "acting user ID (required)")
	cmd.Flags().StringVar(&opts.ObligationID, "obligation", "", "obligation ID (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("obligation")

	return cmd
}
