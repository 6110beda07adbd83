package provider

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/tool"
	"github.com/cel-ai/community-tools-go/types"
)

// Provider is an immutable grouping of related tools.
type Provider struct {
	name        string
	version     string
	description string
	tools       []*tool.Tool
	byName      map[string]*tool.Tool
}

// Config holds the configuration for building a Provider.
type Config struct {
	name        string
	version     string
	description string
	tools       []*tool.Tool
}

// NewConfig creates a new provider configuration.
func NewConfig() *Config {
	return &Config{version: "1.0.0"}
}

// SetName sets the provider name.
func (c *Config) SetName(name string) *Config {
	c.name = name
	return c
}

// SetVersion sets the provider version.
func (c *Config) SetVersion(version string) *Config {
	c.version = version
	return c
}

// SetDescription sets the provider description.
func (c *Config) SetDescription(description string) *Config {
	c.description = description
	return c
}

// AddTool appends a tool to the provider.
func (c *Config) AddTool(t *tool.Tool) *Config {
	c.tools = append(c.tools, t)
	return c
}

// New creates a Provider from the provided Config.
// Returns an error if the name is missing, a tool is nil, or two tools
// share a name.
func New(cfg *Config) (*Provider, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.name == "" {
		return nil, errors.New("provider name is required")
	}

	byName := make(map[string]*tool.Tool, len(cfg.tools))
	tools := make([]*tool.Tool, 0, len(cfg.tools))
	for _, t := range cfg.tools {
		if t == nil {
			return nil, fmt.Errorf("provider %s: nil tool", cfg.name)
		}
		if _, exists := byName[t.Name()]; exists {
			return nil, fmt.Errorf("provider %s: duplicate tool %q", cfg.name, t.Name())
		}
		byName[t.Name()] = t
		tools = append(tools, t)
	}

	return &Provider{
		name:        cfg.name,
		version:     cfg.version,
		description: cfg.description,
		tools:       tools,
		byName:      byName,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return p.name }

// Version returns the provider version.
func (p *Provider) Version() string { return p.version }

// Description returns the provider description.
func (p *Provider) Description() string { return p.description }

// Tools returns the provider's tools in registration order.
func (p *Provider) Tools() []*tool.Tool {
	tools := make([]*tool.Tool, len(p.tools))
	copy(tools, p.tools)
	return tools
}

// Tool returns the named tool.
func (p *Provider) Tool(name string) (*tool.Tool, bool) {
	t, ok := p.byName[name]
	return t, ok
}

// Register declares every tool in the provider against the host
// assistant, in order.
func (p *Provider) Register(a tool.Assistant) {
	for _, t := range p.tools {
		t.Register(a)
	}
}

// Health reports the provider's operational state. The provider is
// degraded when any tool declares an API-key requirement whose
// environment variable is unset; secrets and OAuth credentials are
// per-invocation and do not affect health.
func (p *Provider) Health(ctx context.Context) types.HealthStatus {
	var missing []string
	for _, t := range p.tools {
		apiKey, ok := t.Authorization().(auth.APIKey)
		if !ok {
			continue
		}
		if os.Getenv(apiKey.EnvVar) == "" {
			missing = append(missing, apiKey.EnvVar)
		}
	}

	if len(missing) > 0 {
		return types.NewDegradedStatus(
			fmt.Sprintf("provider %s is missing API keys", p.name),
			map[string]any{"missing_env_vars": missing},
		)
	}

	return types.NewHealthyStatus(fmt.Sprintf("provider %s is operational", p.name))
}
