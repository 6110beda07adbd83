package types

import (
	"log/slog"
	"os"
)

// Session is an opaque per-conversation handle supplied by the host
// assistant. Tools treat it as pass-through context; they must not
// mutate it.
type Session struct {
	// ID uniquely identifies the conversation.
	ID string `json:"id"`

	// Metadata carries host-specific conversation state.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Credential is a caller-supplied bearer or OAuth2 credential.
type Credential struct {
	// Token is the raw credential value.
	Token string `json:"token"`
}

// SecretSource resolves a named secret to its value.
// It reports false when the secret is not available.
type SecretSource func(name string) (string, bool)

// FunctionContext is the per-invocation capability handle passed to every
// tool. It exposes the caller's credential, named secrets resolved by the
// host, and a structured logger.
//
// A nil FunctionContext is valid: all methods return zero values.
type FunctionContext struct {
	// Authorization is the caller's credential, if any.
	Authorization *Credential

	secrets SecretSource
	logger  *slog.Logger
}

// ContextOption configures a FunctionContext.
type ContextOption func(*FunctionContext)

// WithAuthorization sets the caller's credential token.
func WithAuthorization(token string) ContextOption {
	return func(c *FunctionContext) {
		c.Authorization = &Credential{Token: token}
	}
}

// WithSecrets supplies secrets from a static map.
func WithSecrets(secrets map[string]string) ContextOption {
	return func(c *FunctionContext) {
		c.secrets = func(name string) (string, bool) {
			value, ok := secrets[name]
			return value, ok
		}
	}
}

// WithSecretSource supplies secrets from a resolver function.
// This is the hook for hosts that fetch secrets lazily (vaults, per-user
// stores) rather than from a static map.
func WithSecretSource(source SecretSource) ContextOption {
	return func(c *FunctionContext) {
		c.secrets = source
	}
}

// WithLogger sets the logger tools receive through Logger.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *FunctionContext) {
		c.logger = logger
	}
}

// NewFunctionContext creates a FunctionContext from the given options.
func NewFunctionContext(opts ...ContextOption) *FunctionContext {
	c := &FunctionContext{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSecret resolves a named secret. It reports false when the context is
// nil, no secret source was configured, or the source does not know the
// name.
func (c *FunctionContext) GetSecret(name string) (string, bool) {
	if c == nil || c.secrets == nil {
		return "", false
	}
	return c.secrets(name)
}

// Token returns the caller's credential token, or the empty string when no
// credential was supplied.
func (c *FunctionContext) Token() string {
	if c == nil || c.Authorization == nil {
		return ""
	}
	return c.Authorization.Token
}

// Logger returns the context logger. It never returns nil; when no logger
// was configured it returns a logger that discards all records.
func (c *FunctionContext) Logger() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// LookupSecret resolves a named secret from the context, falling back to
// the process environment when the context does not know the name.
// Hosts that resolve secrets per user supply them on the context; simple
// deployments export them as environment variables.
func LookupSecret(c *FunctionContext, name string) (string, bool) {
	if value, ok := c.GetSecret(name); ok && value != "" {
		return value, true
	}
	if value := os.Getenv(name); value != "" {
		return value, true
	}
	return "", false
}
