package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/cache"
	"github.com/cel-ai/community-tools-go/types"
)

const owmPayload = `{
	"name": "London",
	"coord": {"lat": 51.51, "lon": -0.13},
	"weather": [{"main": "Clouds", "description": "overcast clouds"}],
	"main": {"temp": 15.2, "feels_like": 14.8, "temp_min": 13.9, "temp_max": 16.5, "humidity": 72, "pressure": 1012},
	"wind": {"speed": 4.1, "deg": 240},
	"clouds": {"all": 90},
	"visibility": 10000,
	"dt": 1700000000,
	"sys": {"country": "GB", "sunrise": 1699980000, "sunset": 1700015000}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func fctxWithKey() *types.FunctionContext {
	return types.NewFunctionContext(types.WithSecrets(map[string]string{
		auth.EnvOpenWeatherMapAPIKey: "test-key",
	}))
}

func TestGetWeather(t *testing.T) {
	var gotQuery map[string]string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q":     q.Get("q"),
			"units": q.Get("units"),
			"appid": q.Get("appid"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(owmPayload))
	})

	p, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	getWeather, ok := p.Tool("GetWeather")
	require.True(t, ok)

	resp := getWeather.Invoke(context.Background(), nil,
		map[string]any{"location": "London"}, fctxWithKey())

	assert.Equal(t, "London", gotQuery["q"])
	assert.Equal(t, "metric", gotQuery["units"], "units must default to metric")
	assert.Equal(t, "test-key", gotQuery["appid"])

	var info Info
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &info))
	assert.Equal(t, "London", info.Location.Name)
	assert.Equal(t, "GB", info.Location.Country)
	assert.Equal(t, "Clouds", info.Weather.Condition)
	assert.Equal(t, "overcast clouds", info.Weather.Description)
	assert.InDelta(t, 15.2, info.Weather.Temperature.Current, 0.01)
	assert.Equal(t, 72, info.Weather.Humidity)
	assert.InDelta(t, 240, info.Weather.Wind.Direction, 0.01)
	assert.Equal(t, "metric", info.Units)
	assert.Equal(t, int64(1700000000), info.Timestamp)
}

func TestGetWeather_UnitsEnum(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(owmPayload))
	})

	p, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)
	getWeather, _ := p.Tool("GetWeather")

	resp := getWeather.Invoke(context.Background(), nil,
		map[string]any{"location": "London", "units": "kelvin"}, fctxWithKey())

	assert.Contains(t, resp.Text, "Error:", "unknown units must be rejected")
}

func TestGetWeather_MissingKey(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("API must not be called without a key")
	})

	p, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)
	getWeather, _ := p.Tool("GetWeather")

	resp := getWeather.Invoke(context.Background(), nil,
		map[string]any{"location": "London"}, types.NewFunctionContext())

	assert.Contains(t, resp.Text, "Authorization failed:")
}

func TestGetWeather_UpstreamError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	p, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)
	getWeather, _ := p.Tool("GetWeather")

	resp := getWeather.Invoke(context.Background(), nil,
		map[string]any{"location": "Nowhere"}, fctxWithKey())

	assert.Contains(t, resp.Text, "Error fetching weather information for Nowhere:")
}

func TestGetWeather_Cache(t *testing.T) {
	calls := 0
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(owmPayload))
	})

	store := newMemCache()
	p, err := New(WithBaseURL(srv.URL), WithCache(store))
	require.NoError(t, err)
	getWeather, _ := p.Tool("GetWeather")

	params := map[string]any{"location": "London"}
	first := getWeather.Invoke(context.Background(), nil, params, fctxWithKey())
	second := getWeather.Invoke(context.Background(), nil, params, fctxWithKey())

	assert.Equal(t, 1, calls, "second lookup must be served from cache")
	assert.Equal(t, first.Text, second.Text)
}

// memCache is an in-process Cache for tests.
type memCache struct {
	entries map[string]string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (m *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	text, ok := m.entries[key]
	return text, ok, nil
}

func (m *memCache) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	m.entries[key] = text
	return nil
}

func (m *memCache) Close() error { return nil }

var _ cache.Cache = (*memCache)(nil)
