package schema

import "fmt"

// Params is an ordered parameter list with lookup and validation helpers.
type Params []Param

// Get returns the parameter with the given name.
func (ps Params) Get(name string) (Param, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Names returns the parameter names in declaration order.
func (ps Params) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// ApplyDefaults returns a copy of values with declared defaults filled in
// for absent optional parameters. The input map is not modified.
func (ps Params) ApplyDefaults(values map[string]any) map[string]any {
	result := make(map[string]any, len(values)+len(ps))
	for k, v := range values {
		result[k] = v
	}
	for _, p := range ps {
		if p.Default == nil {
			continue
		}
		if _, ok := result[p.Name]; !ok {
			result[p.Name] = p.Default
		}
	}
	return result
}

// Validate checks provided values against the declared parameters:
// every required parameter must be present, and every provided value for a
// declared parameter must match its type and enum. Keys that do not match
// any declared parameter are ignored; the adapter filters them out before
// invocation.
func (ps Params) Validate(values map[string]any) error {
	for _, p := range ps {
		value, ok := values[p.Name]
		if !ok {
			if p.Required {
				return fmt.Errorf("missing required parameter %q", p.Name)
			}
			continue
		}
		if err := p.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns a copy of values containing only the keys that match a
// declared parameter name.
func (ps Params) Filter(values map[string]any) map[string]any {
	filtered := make(map[string]any, len(ps))
	for _, p := range ps {
		if value, ok := values[p.Name]; ok {
			filtered[p.Name] = value
		}
	}
	return filtered
}
