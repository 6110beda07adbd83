package tool

import (
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	mnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tnoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/schema"
)

const instrumentationName = "github.com/cel-ai/community-tools-go/tool"

// Config holds the configuration for building a Tool.
// Use NewConfig to create one, chain the setters, then call New.
type Config struct {
	name            string
	description     string
	authorization   auth.Authorization
	requiredSecrets []string
	params          schema.Params
	fn              Func
	deprecation     string

	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

// NewConfig creates a new Config with default values. The default logger
// discards records and the default tracer and meter are no-ops, so a bare
// tool stays silent in library use.
func NewConfig() *Config {
	return &Config{
		logger: slog.New(slog.DiscardHandler),
		tracer: tnoop.NewTracerProvider().Tracer(instrumentationName),
		meter:  mnoop.NewMeterProvider().Meter(instrumentationName),
	}
}

// SetName sets the tool name.
func (c *Config) SetName(name string) *Config {
	c.name = name
	return c
}

// SetDescription sets the tool description.
func (c *Config) SetDescription(description string) *Config {
	c.description = description
	return c
}

// SetAuthorization sets the declared authorization requirement.
func (c *Config) SetAuthorization(a auth.Authorization) *Config {
	c.authorization = a
	return c
}

// SetRequiredSecrets sets the names of the secrets the tool needs at
// invocation time.
func (c *Config) SetRequiredSecrets(names ...string) *Config {
	c.requiredSecrets = names
	return c
}

// SetParams sets the declared parameter list, in order.
func (c *Config) SetParams(params ...schema.Param) *Config {
	c.params = params
	return c
}

// SetFunc sets the underlying function.
func (c *Config) SetFunc(fn Func) *Config {
	c.fn = fn
	return c
}

// SetDeprecated marks the tool deprecated with the given message.
func (c *Config) SetDeprecated(message string) *Config {
	c.deprecation = message
	return c
}

// SetLogger sets the structured logger.
func (c *Config) SetLogger(logger *slog.Logger) *Config {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// SetTracer sets the tracer used to span invocations.
func (c *Config) SetTracer(tracer trace.Tracer) *Config {
	if tracer != nil {
		c.tracer = tracer
	}
	return c
}

// SetMeter sets the meter used to count invocations.
func (c *Config) SetMeter(meter metric.Meter) *Config {
	if meter != nil {
		c.meter = meter
	}
	return c
}

// New creates a Tool from the provided Config.
// Returns an error if the name or function is missing, or if the declared
// parameter list contains duplicate names.
func New(cfg *Config) (*Tool, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.name == "" {
		return nil, errors.New("tool name is required")
	}
	if cfg.fn == nil {
		return nil, errors.New("tool function is required")
	}

	seen := make(map[string]bool, len(cfg.params))
	for _, p := range cfg.params {
		if p.Name == "" {
			return nil, fmt.Errorf("tool %s: parameter with empty name", cfg.name)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("tool %s: duplicate parameter %q", cfg.name, p.Name)
		}
		seen[p.Name] = true
	}

	invocations, err := cfg.meter.Int64Counter("tool.invocations",
		metric.WithDescription("Number of tool invocations by outcome"))
	if err != nil {
		return nil, fmt.Errorf("creating invocation counter: %w", err)
	}

	secrets := make([]string, len(cfg.requiredSecrets))
	copy(secrets, cfg.requiredSecrets)
	params := make(schema.Params, len(cfg.params))
	copy(params, cfg.params)

	return &Tool{
		name:            cfg.name,
		description:     cfg.description,
		authorization:   cfg.authorization,
		requiredSecrets: secrets,
		params:          params,
		fn:              cfg.fn,
		deprecation:     cfg.deprecation,
		logger:          cfg.logger,
		tracer:          cfg.tracer,
		invocations:     invocations,
	}, nil
}
