package toolerr

import (
	"errors"

	"github.com/cel-ai/community-tools-go/types"
)

// ToolError is the shared shape of every taxonomy kind. Message is the
// user-facing text and is always non-empty; DeveloperMessage may add
// detail for logs and defaults to Message.
type ToolError struct {
	// Message is the user-facing error text.
	Message string

	// DeveloperMessage is the detailed, developer-facing error text.
	DeveloperMessage string

	// Cause is the underlying error, if any.
	Cause error
}

func newToolError(message string) ToolError {
	if message == "" {
		message = "tool execution failed"
	}
	return ToolError{
		Message:          message,
		DeveloperMessage: message,
	}
}

// Error implements the error interface using the developer-facing text.
func (e *ToolError) Error() string {
	if e.Cause != nil {
		return e.DeveloperMessage + ": " + e.Cause.Error()
	}
	return e.DeveloperMessage
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As
// against wrapped errors.
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// ExecutionError is a non-retryable tool failure.
type ExecutionError struct {
	ToolError
}

// NewExecutionError creates an ExecutionError with the given user-facing
// message.
func NewExecutionError(message string) *ExecutionError {
	return &ExecutionError{ToolError: newToolError(message)}
}

// WithDeveloperMessage sets the developer-facing text and returns the same
// error for chaining.
func (e *ExecutionError) WithDeveloperMessage(message string) *ExecutionError {
	e.DeveloperMessage = message
	return e
}

// WithCause attaches an underlying error and returns the same error for
// chaining.
func (e *ExecutionError) WithCause(err error) *ExecutionError {
	e.Cause = err
	return e
}

// Response converts the error to its user-facing response.
func (e *ExecutionError) Response() types.FunctionResponse {
	return types.TextResponse("Error: " + e.Message)
}

// RetryableExecutionError is a tool failure where re-invocation with
// adjusted parameters may succeed.
type RetryableExecutionError struct {
	ToolError

	// AdditionalPromptContent is extra guidance for the retry attempt.
	AdditionalPromptContent string
}

// NewRetryableExecutionError creates a RetryableExecutionError with the
// given user-facing message.
func NewRetryableExecutionError(message string) *RetryableExecutionError {
	return &RetryableExecutionError{ToolError: newToolError(message)}
}

// WithDeveloperMessage sets the developer-facing text and returns the same
// error for chaining.
func (e *RetryableExecutionError) WithDeveloperMessage(message string) *RetryableExecutionError {
	e.DeveloperMessage = message
	return e
}

// WithCause attaches an underlying error and returns the same error for
// chaining.
func (e *RetryableExecutionError) WithCause(err error) *RetryableExecutionError {
	e.Cause = err
	return e
}

// WithAdditionalPrompt attaches guidance text for the next attempt and
// returns the same error for chaining.
func (e *RetryableExecutionError) WithAdditionalPrompt(content string) *RetryableExecutionError {
	e.AdditionalPromptContent = content
	return e
}

// Response converts the error to its user-facing response.
func (e *RetryableExecutionError) Response() types.FunctionResponse {
	return types.TextResponse("Error: " + e.Message + ". Please try again with adjusted parameters.")
}

// AuthorizationError is a missing or invalid credential or secret.
type AuthorizationError struct {
	ToolError
}

// NewAuthorizationError creates an AuthorizationError with the given
// user-facing message.
func NewAuthorizationError(message string) *AuthorizationError {
	return &AuthorizationError{ToolError: newToolError(message)}
}

// WithDeveloperMessage sets the developer-facing text and returns the same
// error for chaining.
func (e *AuthorizationError) WithDeveloperMessage(message string) *AuthorizationError {
	e.DeveloperMessage = message
	return e
}

// WithCause attaches an underlying error and returns the same error for
// chaining.
func (e *AuthorizationError) WithCause(err error) *AuthorizationError {
	e.Cause = err
	return e
}

// Response converts the error to its user-facing response.
func (e *AuthorizationError) Response() types.FunctionResponse {
	return types.TextResponse("Authorization failed: " + e.Message + ". Please check your credentials and try again.")
}

// Responder is implemented by every taxonomy kind.
type Responder interface {
	error
	Response() types.FunctionResponse
}

// Response converts err to its user-facing response when err is, or wraps,
// a taxonomy error. It reports false for plain errors so callers can apply
// their own fallback text.
func Response(err error) (types.FunctionResponse, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Response(), true
	}

	var retryErr *RetryableExecutionError
	if errors.As(err, &retryErr) {
		return retryErr.Response(), true
	}

	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		return authErr.Response(), true
	}

	return types.FunctionResponse{}, false
}
