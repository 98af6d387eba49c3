package cli

import (
	"fmt"

	penaltyService "github.com/KirkDiggler/forfeit/internal/services/penalty"
	"github.com/spf13/cobra"
)

// SettleOptions holds flags for the settle command
type SettleOptions struct {
	UserID         string
	CounterpartyID string
}

// NewSettleCommand creates the settle command
func NewSettleCommand(factory AppFactory) *cobra.Command {
	opts := &SettleOptions{}

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Delete every penalty between two users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				output, err := app.Penalties.RemovePenalties(cmd.Context(), &penaltyService.RemovePenaltiesInput{
					UserID:         opts.UserID,
					CounterpartyID: opts.CounterpartyID,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d penalties\n", output.Removed)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.UserID, "user", "", "user ID (required)")
	cmd.Flags().StringVar(&opts.CounterpartyID, "counterparty", "", "counterparty user ID (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("counterparty")

	return cmd
}
