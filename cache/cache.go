package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Cache stores rendered tool responses keyed by tool name and parameters.
type Cache interface {
	// Get returns the cached response text for a key, reporting whether
	// the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores response text under a key with the given TTL.
	Set(ctx context.Context, key, text string, ttl time.Duration) error

	// Close releases the underlying connection.
	Close() error
}

// Key builds a canonical cache key for a tool invocation. Parameters are
// serialized with sorted keys so logically equal maps produce equal keys.
func Key(tool string, params map[string]any) string {
	if len(params) == 0 {
		return tool
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(tool)
	for _, name := range names {
		value, err := json.Marshal(params[name])
		if err != nil {
			value = []byte(fmt.Sprintf("%v", params[name]))
		}
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.Write(value)
	}
	return b.String()
}

// noop is a Cache that never hits.
type noop struct{}

// Noop returns a cache that stores nothing and never hits.
func Noop() Cache { return noop{} }

func (noop) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }

func (noop) Set(ctx context.Context, key, text string, ttl time.Duration) error { return nil }

func (noop) Close() error { return nil }
