// Package toolerr defines the typed failure taxonomy for tools.
//
// Three kinds exist:
//
//   - ExecutionError: a non-retryable failure of a tool's external call or
//     logic
//   - RetryableExecutionError: a failure where re-invocation with adjusted
//     parameters may succeed; carries optional extra guidance for the next
//     attempt
//   - AuthorizationError: a missing or invalid credential or secret
//
// Every kind carries a user-facing Message and a more detailed
// DeveloperMessage, and converts deterministically to a
// types.FunctionResponse via its Response method. Tool implementations
// return these errors; the adapter's invocation wrapper degrades them to
// textual responses so the host framework never observes a raised error.
//
// All kinds integrate with the standard errors package: they support
// errors.As through the usual pointer target, and Unwrap exposes an
// attached cause.
package toolerr
