package cmd

import (
	"fmt"

	"hotel-booking-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
)

var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Cancel pending bookings whose payment deadline has passed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var expiry commands.ExpiryCommands
		return withCore(cmd.Context(), func() error {
			n, err := expiry.SweepExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Released %d expired holds\n", n)
			return nil
		}, &expiry)
	},
}

var RelayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Publish due notification jobs once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var relay commands.RelayCommands
		return withCore(cmd.Context(), func() error {
			n, err := relay.RelayPending(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Relayed %d notifications\n", n)
			return nil
		}, &relay)
	},
}
