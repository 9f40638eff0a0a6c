package cmd

import (
	"fmt"

	"hotel-booking-engine/internal/infra/seed"
	sqlc "hotel-booking-engine/internal/infra/sqlc/generated"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/spf13/cobra"
)

var seedFile string

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load room inventory from a YAML file",
	Long: `Upserts room types and rooms by code and number, then inserts the
listed maintenance blocks. Blocks are not deduplicated, so rerunning a file
adds them again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var uow shared.UnitOfWork
		return withCore(cmd.Context(), func() error {
			summary, err := seed.NewLoader(uow, sqlc.New()).LoadFile(cmd.Context(), seedFile)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d room types, %d rooms, %d blocks from %s\n",
				summary.RoomTypes, summary.Rooms, summary.Blocks, seedFile)
			return nil
		}, &uow)
	},
}

func init() {
	SeedCmd.Flags().StringVarP(&seedFile, "file", "f", "inventory.yaml", "inventory YAML file")
}
