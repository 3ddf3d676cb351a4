package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newSyncCmd(newApp appFactory) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one favorites sync",
		Long: `Run one two-way favorites sync. Progress is shown on a full-screen view;
use --plain to print one line per step instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd, newApp, true)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Sync(ctx, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print progress as plain text")
	return cmd
}

func newWatchCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd, newApp, false)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.Watch(ctx)
		},
	}
}

func newClearSnapshotsCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-snapshots",
		Short: "Forget the last synced state",
		Long: `Erase the recorded state of the last sync. The next run treats every
favorite on both sides as new, re-adding anything missing on either side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd, newApp, true)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.ClearSnapshots(cmd.Context())
		},
	}
}

func newStatusCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the local sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd, newApp, true)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.Status(cmd.Context())
			if err != nil {
				return err
			}
			report.Print(cmd.OutOrStdout())
			return nil
		},
	}
}
