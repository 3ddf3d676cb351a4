// Package cli defines the favsync command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/favsync/internal/client"
	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/models"
)

// appFactory builds the runtime for a command. Tests replace it.
type appFactory func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error)

// NewRootCommand assembles the favsync command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	return newRootCommand(info, func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (client.Client, error) {
		return client.NewApp(ctx, cfg, info, log)
	})
}

func newRootCommand(info models.AppBuildInfo, newApp appFactory) *cobra.Command {
	root := &cobra.Command{
		Use:     "favsync",
		Version: info.Version,
		Short:   "Two-way favorites sync between the gallery site and a local library",
		Long: `favsync keeps the favorites of a gallery site account and a local gallery
library in step. Each run compares both sides with the state recorded by the
previous run and applies the differences in both directions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newSyncCmd(newApp),
		newWatchCmd(newApp),
		newClearSnapshotsCmd(newApp),
		newStatusCmd(newApp),
		newVersionCmd(info),
	)
	return root
}

// buildApp loads the configuration and builds the application for cmd.
func buildApp(cmd *cobra.Command, newApp appFactory, fileLog bool) (client.Client, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger("favsync", cfg.App.LogLevel)
	if fileLog {
		log = logger.NewFileLogger("favsync", cfg.App.LogLevel, logger.FileOptions{Path: cfg.App.LogFile})
	}

	app, err := newApp(cmd.Context(), cfg, log)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
