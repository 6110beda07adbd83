// Package enum maps shorthand parameter values to their canonical forms.
//
// Assistants frequently produce near-miss enum values ("raw_html" for
// "rawHtml", "Imperial" for "imperial"). Tools register alias mappings per
// parameter, and the adapter normalizes provided values before validation,
// so declared enums keep their canonical spelling without rejecting
// reasonable shorthand.
//
// The registry is global and safe for concurrent use. Lookups are
// case-insensitive on the alias side.
package enum
