package celtools

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/cel-ai/community-tools-go/cache"
	"github.com/cel-ai/community-tools-go/provider"
	"github.com/cel-ai/community-tools-go/providers/gmail"
	"github.com/cel-ai/community-tools-go/providers/weather"
	"github.com/cel-ai/community-tools-go/providers/web"
	"github.com/cel-ai/community-tools-go/tool"
)

// Version is the library version.
const Version = "0.1.0"

// Option configures the built-in provider set.
type Option func(*builtinConfig)

type builtinConfig struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	httpClient *http.Client
	cache      cache.Cache
}

// WithLogger sets the structured logger shared by all built-in tools.
func WithLogger(logger *slog.Logger) Option {
	return func(c *builtinConfig) { c.logger = logger }
}

// WithTracer sets the OpenTelemetry tracer used to span invocations.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *builtinConfig) { c.tracer = tracer }
}

// WithHTTPClient sets the HTTP client shared by all built-in providers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *builtinConfig) { c.httpClient = hc }
}

// WithCache enables response caching where a provider supports it.
func WithCache(cc cache.Cache) Option {
	return func(c *builtinConfig) { c.cache = cc }
}

// RegisterAll registers every given provider against the assistant
// host, in order.
func RegisterAll(a tool.Assistant, providers ...*provider.Provider) {
	for _, p := range providers {
		p.Register(a)
	}
}

// Builtin assembles the built-in providers (weather, web, gmail) into a
// registry ready to register against an assistant host.
//
// Example:
//
//	registry, err := celtools.Builtin(
//	    celtools.WithLogger(logger),
//	    celtools.WithCache(redisCache),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.RegisterAll(assistant)
func Builtin(opts ...Option) (*provider.Registry, error) {
	cfg := &builtinConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	weatherProvider, err := weather.New(
		weather.WithLogger(cfg.logger),
		weather.WithTracer(cfg.tracer),
		weather.WithHTTPClient(cfg.httpClient),
		weather.WithCache(cfg.cache))
	if err != nil {
		return nil, err
	}

	webProvider, err := web.New(
		web.WithLogger(cfg.logger),
		web.WithTracer(cfg.tracer),
		web.WithHTTPClient(cfg.httpClient))
	if err != nil {
		return nil, err
	}

	gmailProvider, err := gmail.New(
		gmail.WithLogger(cfg.logger),
		gmail.WithTracer(cfg.tracer),
		gmail.WithHTTPClient(cfg.httpClient))
	if err != nil {
		return nil, err
	}

	registry := provider.NewRegistry()
	for _, p := range []*provider.Provider{weatherProvider, webProvider, gmailProvider} {
		if err := registry.Add(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
