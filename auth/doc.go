// Package auth declares the authorization requirements a tool can carry.
//
// An Authorization is declarative metadata attached to a tool at
// construction time. Validate is a capability presence check, not a
// cryptographic guarantee: a true result means only that a credential is
// present where one is required. Token exchange and verification belong to
// the host or the external service.
//
// Four kinds exist: None, APIKey (keyed by a process environment
// variable), OAuth2 (with a scope list), and BearerToken. Specializations
// such as Gmail, GitHub, OpenWeatherMap, and Firecrawl fix default scope
// lists or environment variable names but never alter validation
// behavior.
package auth
