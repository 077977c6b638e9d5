// Package bridge exposes the snapshot operations to the GUI front-end.
// It pairs a command registry (name -> handler) with a loopback
// WebSocket transport carrying JSON request/response frames. The
// front-end is the only intended client; the transport never leaves
// the machine.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// HandlerFunc serves one named command. Args hold the raw JSON
// parameters from the request frame (may be empty). The returned value
// is serialized into the response frame.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Registry maps command names to handlers.
type Registry struct {
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

// NewRegistry creates an empty command registry with the given logger.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

// Register adds a handler under the given command name. Registering
// the same name twice is a programming error and panics.
func (r *Registry) Register(name string, fn HandlerFunc) {
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("bridge: command %q registered twice", name))
	}
	r.handlers[name] = fn
	r.logger.Info("Registered command", zap.String("name", name))
}

// Dispatch invokes the handler for the named command. Unknown commands
// are an error; handler errors pass through unchanged and are
// flattened to a message string at the transport layer.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	fn, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	return fn(ctx, args)
}

// Commands returns the registered command names, sorted.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
