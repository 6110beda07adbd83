package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cel-ai/community-tools-go/tool"
	"github.com/cel-ai/community-tools-go/types"
)

// Sentinel errors returned by Registry lookups and additions.
var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrToolNotFound      = errors.New("tool not found")
	ErrDuplicateProvider = errors.New("duplicate provider name")
	ErrDuplicateTool     = errors.New("duplicate tool name")
)

// Registry aggregates providers and indexes their tools by name.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers []*Provider
	byName    map[string]*Provider
	tools     map[string]*tool.Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Provider),
		tools:  make(map[string]*tool.Tool),
	}
}

// Add registers a provider. Provider names and tool names must be unique
// across the registry; on conflict nothing is added.
func (r *Registry) Add(p *Provider) error {
	if p == nil {
		return errors.New("provider cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[p.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, p.Name())
	}
	for _, t := range p.Tools() {
		if _, exists := r.tools[t.Name()]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name())
		}
	}

	r.providers = append(r.providers, p)
	r.byName[p.Name()] = p
	for _, t := range p.Tools() {
		r.tools[t.Name()] = t
	}
	return nil
}

// Provider returns the named provider.
func (r *Registry) Provider(name string) (*Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// Providers returns all providers in addition order.
func (r *Registry) Providers() []*Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]*Provider, len(r.providers))
	copy(providers, r.providers)
	return providers
}

// Tool returns the named tool from any registered provider.
func (r *Registry) Tool(name string) (*tool.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t, nil
}

// Tools returns every registered tool, ordered by provider addition order
// and tool registration order within each provider.
func (r *Registry) Tools() []*tool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tools []*tool.Tool
	for _, p := range r.providers {
		tools = append(tools, p.Tools()...)
	}
	return tools
}

// RegisterAll declares every tool of every provider against the host
// assistant.
func (r *Registry) RegisterAll(a tool.Assistant) {
	for _, p := range r.Providers() {
		p.Register(a)
	}
}

// Health aggregates provider health: unhealthy if any provider is
// unhealthy, degraded if any is degraded, healthy otherwise. Details map
// provider names to their individual statuses.
func (r *Registry) Health(ctx context.Context) types.HealthStatus {
	providers := r.Providers()

	details := make(map[string]any, len(providers))
	worst := types.StatusHealthy
	for _, p := range providers {
		status := p.Health(ctx)
		details[p.Name()] = status
		switch status.Status {
		case types.StatusUnhealthy:
			worst = types.StatusUnhealthy
		case types.StatusDegraded:
			if worst == types.StatusHealthy {
				worst = types.StatusDegraded
			}
		}
	}

	switch worst {
	case types.StatusUnhealthy:
		return types.NewUnhealthyStatus("one or more providers are unhealthy", details)
	case types.StatusDegraded:
		return types.NewDegradedStatus("one or more providers are degraded", details)
	default:
		return types.NewHealthyStatus("all providers are operational")
	}
}
