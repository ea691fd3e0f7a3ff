package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/po3rin/saunadge/internal/app"
	"github.com/po3rin/saunadge/internal/config"
	"github.com/po3rin/saunadge/internal/logger"
	"github.com/po3rin/saunadge/internal/model"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "saunadge",
		Short: "Serves the sauna-ikitai Sakatsu count as a shields.io endpoint badge.",
		Long: `saunadge scrapes the Sakatsu count from a sauna-ikitai.com profile
and serves it on /api/v1/badge/{id} in the shields.io endpoint format.
Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the badge HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "badge <id>",
		Short: "Print the badge JSON for one saunner and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := setup()
			if err != nil {
				return err
			}

			badge, scrapeErr := application.Badge(context.Background(), args[0])
			if err := model.EncodeBadge(cmd.OutOrStdout(), badge); err != nil {
				return err
			}
			if scrapeErr != nil {
				return fmt.Errorf("%s: %w", model.ErrorKind(scrapeErr), scrapeErr)
			}
			return nil
		},
	})

	return root
}

func setup() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logHandler := logger.NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	slog.SetDefault(slog.New(logHandler))

	application, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		return nil, err
	}

	return application, nil
}

func serve() error {
	application, err := setup()
	if err != nil {
		return err
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		return err
	}

	return nil
}
