// Package provider groups related tools for bulk registration.
//
// A Provider is an immutable, ordered collection of tools built with the
// Config builder. Register declares every tool against a host assistant
// in one call, and Health reports whether the provider's declared API-key
// environment variables are present.
//
// The Registry aggregates providers and enforces tool-name uniqueness
// across them, which is the uniqueness scope a single host assistant
// sees.
package provider
