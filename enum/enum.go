package enum

import (
	"strings"
	"sync"
)

// registry maps tool name -> parameter name -> lowercased alias -> canonical value.
var (
	registry = make(map[string]map[string]map[string]string)
	mu       sync.RWMutex
)

// Register registers alias mappings for one tool parameter.
// Aliases are stored lowercased for case-insensitive lookup.
func Register(toolName, paramName string, mappings map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if registry[toolName] == nil {
		registry[toolName] = make(map[string]map[string]string)
	}
	if registry[toolName][paramName] == nil {
		registry[toolName][paramName] = make(map[string]string)
	}

	for alias, canonical := range mappings {
		registry[toolName][paramName][strings.ToLower(alias)] = canonical
	}
}

// RegisterBatch registers mappings for multiple parameters of a tool at once.
func RegisterBatch(toolName string, paramMappings map[string]map[string]string) {
	for paramName, mappings := range paramMappings {
		Register(toolName, paramName, mappings)
	}
}

// Normalize returns a copy of params with registered aliases replaced by
// their canonical values. Non-string values and parameters without
// mappings pass through unchanged. When the tool has no mappings the input
// map is returned as is.
func Normalize(toolName string, params map[string]any) map[string]any {
	mu.RLock()
	toolMappings := registry[toolName]
	mu.RUnlock()

	if len(toolMappings) == 0 || len(params) == 0 {
		return params
	}

	normalized := make(map[string]any, len(params))
	for k, v := range params {
		normalized[k] = v
	}

	mu.RLock()
	defer mu.RUnlock()
	for paramName, mappings := range toolMappings {
		value, ok := normalized[paramName]
		if !ok {
			continue
		}
		strValue, ok := value.(string)
		if !ok {
			continue
		}
		if canonical, found := mappings[strings.ToLower(strValue)]; found {
			normalized[paramName] = canonical
		}
	}

	return normalized
}

// Mappings returns the registered alias mappings for a tool, or nil when
// none exist. The result is a copy; mutating it does not affect the
// registry.
func Mappings(toolName string) map[string]map[string]string {
	mu.RLock()
	defer mu.RUnlock()

	toolMappings, ok := registry[toolName]
	if !ok {
		return nil
	}

	result := make(map[string]map[string]string, len(toolMappings))
	for paramName, mappings := range toolMappings {
		copied := make(map[string]string, len(mappings))
		for alias, canonical := range mappings {
			copied[alias] = canonical
		}
		result[paramName] = copied
	}
	return result
}

// Reset removes all registered mappings. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]map[string]map[string]string)
}
