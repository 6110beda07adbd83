package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/cache"
	"github.com/cel-ai/community-tools-go/input"
	"github.com/cel-ai/community-tools-go/provider"
	"github.com/cel-ai/community-tools-go/schema"
	"github.com/cel-ai/community-tools-go/tool"
	"github.com/cel-ai/community-tools-go/types"
)

const cacheTTL = 15 * time.Minute

// Option customizes the weather provider.
type Option func(*config)

type config struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithBaseURL overrides the OpenWeatherMap API base URL.
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCache enables response caching for repeated lookups.
func WithCache(cc cache.Cache) Option {
	return func(c *config) {
		if cc != nil {
			c.cache = cc
		}
	}
}

// WithLogger sets the structured logger for the provider's tools.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets the tracer used to span tool invocations.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) { c.tracer = tracer }
}

// New builds the weather provider.
func New(opts ...Option) (*provider.Provider, error) {
	cfg := &config{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
		cache:  cache.Noop(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &client{baseURL: cfg.baseURL, httpClient: cfg.httpClient}

	getWeather, err := tool.New(tool.NewConfig().
		SetName("GetWeather").
		SetDescription("Get current weather information for a specified location.").
		SetAuthorization(auth.OpenWeatherMap()).
		SetLogger(cfg.logger).
		SetTracer(cfg.tracer).
		SetParams(
			schema.String("location", "The city name or location to get weather for (e.g., 'London', 'New York,US')."),
			schema.String("units", "Temperature units for the response.").
				WithEnum("metric", "imperial", "standard").
				WithDefault("metric"),
		).
		SetFunc(getWeatherFunc(c, cfg.cache)))
	if err != nil {
		return nil, err
	}

	return provider.New(provider.NewConfig().
		SetName("weather").
		SetDescription("Current weather conditions from OpenWeatherMap").
		AddTool(getWeather))
}

// getWeatherFunc returns the GetWeather callable. API failures are
// reported as response text rather than errors so the assistant can
// relay them conversationally.
func getWeatherFunc(c *client, store cache.Cache) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, ok := types.LookupSecret(fctx, auth.EnvOpenWeatherMapAPIKey)
		if !ok || apiKey == "" {
			return fmt.Sprintf("Error: %s environment variable is required but not found.", auth.EnvOpenWeatherMapAPIKey), nil
		}

		location := input.String(params, "location", "")
		units := input.String(params, "units", "metric")

		key := cache.Key("GetWeather", map[string]any{"location": location, "units": units})
		if text, hit, err := store.Get(ctx, key); err == nil && hit {
			return text, nil
		}

		info, err := c.current(ctx, location, units, apiKey)
		if err != nil {
			return fmt.Sprintf("Error fetching weather information for %s: %s", location, err), nil
		}

		data, err := json.Marshal(info)
		if err != nil {
			return fmt.Sprintf("Error fetching weather information for %s: %s", location, err), nil
		}

		text := string(data)
		_ = store.Set(ctx, key, text, cacheTTL)
		return text, nil
	}
}
