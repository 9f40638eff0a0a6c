package cmd

import (
	"fmt"

	"hotel-booking-engine/cmd/bootstrap"
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenStaffID string
	tokenRole    string
)

// Staff accounts live outside the engine; this is how operators hand a front
// desk client its bearer token.
var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a staff access token",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		role, err := staff.NewRole(tokenRole)
		if err != nil {
			return err
		}
		id := uuid.New()
		if tokenStaffID != "" {
			if id, err = uuid.Parse(tokenStaffID); err != nil {
				return fmt.Errorf("invalid --staff-id: %w", err)
			}
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		token, err := bootstrap.NewJWTService(cfg).GenerateToken(id, string(role))
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	TokenCmd.Flags().StringVar(&tokenStaffID, "staff-id", "", "staff id (random when empty)")
	TokenCmd.Flags().StringVar(&tokenRole, "role", string(staff.RoleFrontDesk), "front_desk, manager or admin")
}
