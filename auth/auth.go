package auth

import "os"

// Kind identifies an authorization scheme.
type Kind string

const (
	KindNone        Kind = "none"
	KindAPIKey      Kind = "api_key"
	KindOAuth2      Kind = "oauth2"
	KindBearerToken Kind = "bearer_token"
)

// Authorization is a capability requirement attached to a tool.
// Validate is a presence check across all kinds; it must not be mistaken
// for proof of credential correctness.
type Authorization interface {
	// Kind returns the authorization scheme.
	Kind() Kind

	// Validate reports whether the required credential is present.
	// APIKey ignores the argument and consults the process environment.
	Validate(credential string) bool
}

// None declares that a tool needs no authorization.
type None struct{}

func (None) Kind() Kind { return KindNone }

// Validate always reports true.
func (None) Validate(string) bool { return true }

// APIKey requires an API key in a process environment variable.
type APIKey struct {
	// EnvVar is the environment variable holding the key.
	EnvVar string
}

func (a APIKey) Kind() Kind { return KindAPIKey }

// Validate ignores the credential argument and reports whether the
// designated environment variable is set to a non-empty string.
func (a APIKey) Validate(string) bool {
	return os.Getenv(a.EnvVar) != ""
}

// OAuth2 requires an OAuth2 token with the declared scopes.
type OAuth2 struct {
	// Scopes is the ordered list of required scopes.
	Scopes []string
}

func (OAuth2) Kind() Kind { return KindOAuth2 }

// Validate reports whether a credential was supplied. Scope enforcement
// is the external service's concern.
func (OAuth2) Validate(credential string) bool {
	return credential != ""
}

// BearerToken requires any bearer token.
type BearerToken struct{}

func (BearerToken) Kind() Kind { return KindBearerToken }

// Validate reports whether a credential was supplied.
func (BearerToken) Validate(credential string) bool {
	return credential != ""
}
