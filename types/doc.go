// Package types defines the shared value types exchanged between tools and
// the host assistant.
//
// The core types are:
//
//   - FunctionResponse: the structured result every tool invocation produces,
//     regardless of success or failure
//   - FunctionContext: the per-invocation handle giving a tool access to the
//     caller's credential and named secrets
//   - Session: an opaque per-conversation handle supplied by the host
//   - HealthStatus: the operational state reported by providers
//
// All types in this package are plain values with no hidden state. A
// FunctionContext is safe for concurrent use once constructed.
package types
