package celtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cel-ai/community-tools-go/schema"
	"github.com/cel-ai/community-tools-go/tool"
)

type recordingAssistant struct {
	declared []string
	bound    []tool.Handler
}

func (a *recordingAssistant) Function(name, description string, params []schema.Param) tool.Binder {
	a.declared = append(a.declared, name)
	return func(h tool.Handler) {
		a.bound = append(a.bound, h)
	}
}

func TestBuiltin(t *testing.T) {
	registry, err := Builtin()
	require.NoError(t, err)

	names := make([]string, 0, 3)
	for _, p := range registry.Providers() {
		names = append(names, p.Name())
	}
	assert.ElementsMatch(t, []string{"weather", "web", "gmail"}, names)

	// Every tool resolves through the registry by name.
	for _, expect := range []string{"GetWeather", "ScrapeURL", "SendMessage"} {
		tl, err := registry.Tool(expect)
		require.NoError(t, err)
		assert.Equal(t, expect, tl.Name())
	}
}

func TestRegisterAll(t *testing.T) {
	registry, err := Builtin()
	require.NoError(t, err)

	weatherProvider, err := registry.Provider("weather")
	require.NoError(t, err)

	a := &recordingAssistant{}
	RegisterAll(a, weatherProvider)

	assert.Equal(t, []string{"GetWeather"}, a.declared)
}

func TestBuiltin_RegisterAll(t *testing.T) {
	registry, err := Builtin()
	require.NoError(t, err)

	a := &recordingAssistant{}
	registry.RegisterAll(a)

	assert.Len(t, a.declared, 12, "all built-in tools must be declared")
	assert.Len(t, a.bound, 12, "every declaration must receive a handler")
	assert.Contains(t, a.declared, "GetWeather")
	assert.Contains(t, a.declared, "MapWebsite")
	assert.Contains(t, a.declared, "CreateDraft")
}
