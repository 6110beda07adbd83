// Package input provides type-safe helpers for reading tool parameter maps.
//
// Parameter values arrive as map[string]any after JSON decoding, so
// numbers may be float64, int, or string, and list-valued parameters may
// arrive as JSON arrays or comma-separated strings. These helpers coerce
// across those representations, return the given default on any mismatch,
// handle nil maps gracefully, and never panic.
package input
