// Command wiring: one registry entry per snapshot operation. Command
// names are part of the front-end contract.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sysdeck-app/backend/internal/snapshot"
)

// processArgs are the parameters accepted by get_processes.
type processArgs struct {
	Limit int `json:"limit"`
}

// RegisterEndpoints wires every snapshot operation into the registry.
// topProcesses is the default limit for the standalone process listing
// when the request carries no limit of its own.
func RegisterEndpoints(r *Registry, b *snapshot.Builder, topProcesses int) {
	r.Register("get_system_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.SystemInfo(ctx)
	})
	r.Register("get_cpu_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.CPUInfo(ctx)
	})
	r.Register("get_memory_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.MemoryInfo(ctx)
	})
	r.Register("get_disk_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.DiskInfo(ctx)
	})
	r.Register("get_network_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.NetworkInfo(ctx)
	})
	r.Register("get_real_time_stats", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.RealtimeStats(ctx)
	})
	r.Register("get_processes", func(ctx context.Context, args json.RawMessage) (interface{}, error) {
		limit, err := parseLimit(args, topProcesses)
		if err != nil {
			return nil, err
		}
		return b.TopProcesses(ctx, limit)
	})
	r.Register("get_temperatures", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.Temperatures(ctx)
	})
	r.Register("get_advanced_system_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.AdvancedInfo(ctx)
	})
	r.Register("get_extended_info", func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return b.ExtendedInfo(ctx)
	})
}

// parseLimit extracts the optional {"limit": n} parameter, falling
// back to fallback when args are empty or the limit is omitted.
func parseLimit(args json.RawMessage, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	var p processArgs
	if err := json.Unmarshal(args, &p); err != nil {
		return 0, fmt.Errorf("invalid arguments: %w", err)
	}
	if p.Limit < 0 {
		return 0, fmt.Errorf("limit must not be negative (got %d)", p.Limit)
	}
	if p.Limit == 0 {
		return fallback, nil
	}
	return p.Limit, nil
}
