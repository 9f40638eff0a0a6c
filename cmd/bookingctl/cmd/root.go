package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hotel-booking-engine/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var bookingctlLongHelp = `
bookingctl runs one-off maintenance against the booking database using the
same environment as the API server (.env is honoured).

  seed    load room types, rooms and maintenance blocks from a YAML file
  sweep   release unpaid holds past their payment deadline
  relay   publish pending notification jobs once
  token   mint a back-office access token`

var rootCmd = &cobra.Command{
	Use:           "bookingctl",
	Short:         "Operator tool for the hotel booking engine",
	Long:          bookingctlLongHelp,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			if err := cmd.Help(); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			return
		}
		fmt.Printf("bookingctl: '%s' is not a valid command.\nSee 'bookingctl --help'\n", args[0])
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(SeedCmd)
	rootCmd.AddCommand(SweepCmd)
	rootCmd.AddCommand(RelayCmd)
	rootCmd.AddCommand(TokenCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withCore starts the storage and use-case graph without the HTTP layer,
// fills targets, runs fn and shuts everything down again.
func withCore(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, "shutdown:", err)
		}
	}()
	return fn()
}
