// serve command: run the loopback bridge until interrupted.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/bridge"
	"github.com/sysdeck-app/backend/internal/config"
	"github.com/sysdeck-app/backend/internal/snapshot"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve snapshot commands to the GUI over the loopback bridge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := initLogger(cfg)
			defer logger.Sync()

			logger.Info("Starting sysdeck backend",
				zap.String("version", version),
				zap.String("listen", cfg.Bridge.Listen),
				zap.Duration("settle_delay", cfg.Sampling.SettleDelay.Duration))

			builder := snapshot.New(cfg.Sampling.SettleDelay.Duration, logger)
			registry := bridge.NewRegistry(logger)
			bridge.RegisterEndpoints(registry, builder, cfg.Sampling.TopProcesses)
			server := bridge.NewServer(cfg.Bridge.Listen, registry, logger)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = server.Run(ctx)
			if err != nil {
				logger.Error("Bridge failed", zap.Error(err))
				return err
			}
			logger.Info("Backend stopped")
			return nil
		},
	}
}
