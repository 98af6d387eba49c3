package cli

import (
	"fmt"
	"text/tabwriter"

	penaltyService "github.com/KirkDiggler/forfeit/internal/services/penalty"
	"github.com/spf13/cobra"
)

// SummaryOptions holds flags for the summary command
type SummaryOptions struct {
	UserID string
}

// NewSummaryCommand creates the summary command
func NewSummaryCommand(factory AppFactory) *cobra.Command {
	opts := &SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show what a user owes and is owed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				return runSummary(cmd, app, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.UserID, "user", "", "user ID (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runSummary(cmd *cobra.Command, app *App, opts *SummaryOptions) error {
	output, err := app.Penalties.GetPenaltySummary(cmd.Context(), &penaltyService.GetPenaltySummaryInput{
		UserID: opts.UserID,
	})
	if err != nil {
		return err
	}

	summary := output.Summary
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "user: %s\n", summary.UserID)
	fmt.Fprintf(out, "penalties: %d\n", len(summary.Penalties))
	fmt.Fprintf(out, "total owed: %.2f\n", summary.TotalOwed)
	fmt.Fprintf(out, "total received: %.2f\n", summary.TotalReceived)

	if len(summary.Owed) == 0 {
		fmt.Fprintln(out, "owes nobody")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OWES\tNAME\tAMOUNT")
	for _, balance := range summary.Owed {
		name := balance.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", balance.UserID, name, balance.Amount)
	}
	return w.Flush()
}
