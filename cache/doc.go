// Package cache provides a response cache for idempotent, read-style
// tools such as weather lookups and page scrapes.
//
// The cache stores rendered response text keyed by tool name and
// canonicalized parameters. Providers consult it before calling the
// external service and populate it on success with a per-provider TTL.
// The Redis implementation uses go-redis; Noop returns a cache that
// never hits, for deployments without Redis.
package cache
