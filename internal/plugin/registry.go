package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"anilookup/internal/metrics"
	"anilookup/pkg/models"
)

// Registry routes commands to plugins by prefix.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string
	logger  *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		plugins: make(map[string]Plugin),
		logger:  logger.With("component", "plugins"),
	}
}

// Register adds p. Prefixes are case-insensitive and must be unique.
func (r *Registry) Register(p Plugin) error {
	prefix := strings.ToLower(strings.TrimSpace(p.Prefix()))
	if prefix == "" {
		return fmt.Errorf("plugin %q has no prefix", p.Name())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.plugins[prefix]; ok {
		return fmt.Errorf("prefix %q already registered by %q", prefix, existing.Name())
	}
	r.plugins[prefix] = p
	r.order = append(r.order, prefix)
	return nil
}

func (r *Registry) Lookup(prefix string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[strings.ToLower(prefix)]
	return p, ok
}

// Plugins lists registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plugin, 0, len(r.order))
	for _, prefix := range r.order {
		out = append(out, r.plugins[prefix])
	}
	return out
}

// Dispatch runs the plugin registered for prefix. Failures are returned
// unchanged so the caller decides how to show them.
func (r *Registry) Dispatch(ctx context.Context, prefix string, args []string) (models.Card, error) {
	p, ok := r.Lookup(prefix)
	if !ok {
		return models.Card{}, fmt.Errorf("%w: %s", ErrUnknownCommand, prefix)
	}

	start := time.Now()
	card, err := p.Query(ctx, args)
	metrics.LookupsTotal.WithLabelValues(p.Prefix(), Outcome(err)).Inc()

	if err != nil {
		r.logger.Info("query failed",
			"prefix", p.Prefix(),
			"args", args,
			"error", err,
			"elapsed", time.Since(start),
		)
		return models.Card{}, err
	}
	r.logger.Info("query answered",
		"prefix", p.Prefix(),
		"args", args,
		"url", card.URL,
		"elapsed", time.Since(start),
	)
	return card, nil
}

// ParseCommand splits a chat line such as "!al [Levi]" into its prefix and
// arguments. marker is the character sequence that starts a command.
func ParseCommand(marker, line string) (prefix string, args []string, ok bool) {
	if marker == "" || !strings.HasPrefix(line, marker) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(line, marker))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}
