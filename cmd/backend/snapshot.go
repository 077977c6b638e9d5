// snapshot command: run one named bridge command and print the result
// as indented JSON. Useful for debugging the backend without a GUI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sysdeck-app/backend/internal/bridge"
	"github.com/sysdeck-app/backend/internal/config"
	"github.com/sysdeck-app/backend/internal/snapshot"
)

func newSnapshotCmd(configPath *string) *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "snapshot <command>",
		Short: "Run one snapshot command and print JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			// One-shot runs stay quiet unless something fails.
			logger := zap.NewNop()
			builder := snapshot.New(cfg.Sampling.SettleDelay.Duration, logger)
			registry := bridge.NewRegistry(logger)
			bridge.RegisterEndpoints(registry, builder, cfg.Sampling.TopProcesses)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			data, err := registry.Dispatch(ctx, args[0], json.RawMessage(rawArgs))
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.Commands(), ", "))
			}

			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "JSON arguments for the command, e.g. '{\"limit\": 5}'")

	return cmd
}
