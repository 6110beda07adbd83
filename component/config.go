// Package component provides loading and parsing of provider.yaml
// manifests. A manifest is the static description of a provider — its
// tools, parameters, authorization requirements, and secrets — for hosts
// and operators that need the catalog without constructing the provider.
package component

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/provider"
	"github.com/cel-ai/community-tools-go/schema"
)

// Manifest represents a provider.yaml file.
type Manifest struct {
	Name        string         `yaml:"name"`
	Version     string         `yaml:"version"`
	Description string         `yaml:"description,omitempty"`
	Tools       []ToolManifest `yaml:"tools"`
}

// ToolManifest describes one tool in a manifest.
type ToolManifest struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Auth        *AuthManifest   `yaml:"auth,omitempty"`
	Secrets     []string        `yaml:"secrets,omitempty"`
	Params      []ParamManifest `yaml:"params,omitempty"`
	Deprecated  string          `yaml:"deprecated,omitempty"`
}

// AuthManifest describes a tool's authorization requirement.
type AuthManifest struct {
	// Type is one of none, api_key, oauth2, bearer_token.
	Type string `yaml:"type"`

	// Env is the environment variable for api_key authorization.
	Env string `yaml:"env,omitempty"`

	// Scopes lists the OAuth2 scopes.
	Scopes []string `yaml:"scopes,omitempty"`
}

// ParamManifest describes one tool parameter.
type ParamManifest struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description,omitempty"`
	Required    bool     `yaml:"required"`
	Enum        []string `yaml:"enum,omitempty"`
	Default     any      `yaml:"default,omitempty"`
}

// Load reads and parses a provider.yaml file from the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest bytes and validates the result.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

var validAuthTypes = map[string]bool{
	string(auth.KindNone):        true,
	string(auth.KindAPIKey):      true,
	string(auth.KindOAuth2):      true,
	string(auth.KindBearerToken): true,
}

// Validate checks the manifest for structural problems: missing names,
// duplicate tools or parameters, and unknown authorization types.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("manifest %s: version is required", m.Name)
	}

	seenTools := make(map[string]bool, len(m.Tools))
	for _, t := range m.Tools {
		if t.Name == "" {
			return fmt.Errorf("manifest %s: tool with empty name", m.Name)
		}
		if seenTools[t.Name] {
			return fmt.Errorf("manifest %s: duplicate tool %q", m.Name, t.Name)
		}
		seenTools[t.Name] = true

		if t.Auth != nil {
			if !validAuthTypes[t.Auth.Type] {
				return fmt.Errorf("tool %s: unknown auth type %q", t.Name, t.Auth.Type)
			}
			if t.Auth.Type == string(auth.KindAPIKey) && t.Auth.Env == "" {
				return fmt.Errorf("tool %s: api_key auth requires env", t.Name)
			}
		}

		seenParams := make(map[string]bool, len(t.Params))
		for _, p := range t.Params {
			if p.Name == "" {
				return fmt.Errorf("tool %s: parameter with empty name", t.Name)
			}
			if seenParams[p.Name] {
				return fmt.Errorf("tool %s: duplicate parameter %q", t.Name, p.Name)
			}
			seenParams[p.Name] = true
		}
	}

	return nil
}

// Describe generates a manifest from a live provider.
func Describe(p *provider.Provider) *Manifest {
	m := &Manifest{
		Name:        p.Name(),
		Version:     p.Version(),
		Description: p.Description(),
	}

	for _, t := range p.Tools() {
		d := t.Descriptor()
		tm := ToolManifest{
			Name:        d.Name,
			Description: d.Description,
			Secrets:     d.RequiredSecrets,
			Deprecated:  d.Deprecated,
		}

		switch a := t.Authorization().(type) {
		case nil:
		case auth.APIKey:
			tm.Auth = &AuthManifest{Type: string(auth.KindAPIKey), Env: a.EnvVar}
		case auth.OAuth2:
			tm.Auth = &AuthManifest{Type: string(auth.KindOAuth2), Scopes: a.Scopes}
		default:
			tm.Auth = &AuthManifest{Type: string(a.Kind())}
		}

		for _, p := range d.Params {
			pm := ParamManifest{
				Name:        p.Name,
				Type:        string(p.Type),
				Description: p.Description,
				Required:    p.Required,
				Default:     p.Default,
			}
			for _, e := range p.Enum {
				pm.Enum = append(pm.Enum, fmt.Sprintf("%v", e))
			}
			tm.Params = append(tm.Params, pm)
		}

		m.Tools = append(m.Tools, tm)
	}

	return m
}

// Diff compares the manifest against a live provider and returns a list
// of human-readable drift messages: tools present on one side only,
// mismatched secrets, and mismatched parameter lists. An empty result
// means the manifest matches the provider.
func (m *Manifest) Diff(p *provider.Provider) []string {
	var drift []string

	if m.Name != p.Name() {
		drift = append(drift, fmt.Sprintf("name: manifest %q, provider %q", m.Name, p.Name()))
	}

	declared := make(map[string]ToolManifest, len(m.Tools))
	for _, t := range m.Tools {
		declared[t.Name] = t
	}

	for _, t := range p.Tools() {
		tm, ok := declared[t.Name()]
		if !ok {
			drift = append(drift, fmt.Sprintf("tool %s: missing from manifest", t.Name()))
			continue
		}
		delete(declared, t.Name())

		if !equalStrings(tm.Secrets, t.RequiredSecrets()) {
			drift = append(drift, fmt.Sprintf("tool %s: secrets differ (manifest %v, provider %v)",
				t.Name(), tm.Secrets, t.RequiredSecrets()))
		}
		if names := paramNames(t.Params()); !equalStrings(manifestParamNames(tm.Params), names) {
			drift = append(drift, fmt.Sprintf("tool %s: params differ (manifest %v, provider %v)",
				t.Name(), manifestParamNames(tm.Params), names))
		}
	}

	for name := range declared {
		drift = append(drift, fmt.Sprintf("tool %s: not provided", name))
	}

	return drift
}

func paramNames(params []schema.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func manifestParamNames(params []ParamManifest) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
