package types

// RequestMode controls how the host assistant treats a tool response.
type RequestMode string

const (
	// RequestModeSingle delivers the response as a single conversational turn.
	RequestModeSingle RequestMode = "single"

	// RequestModeMulti allows the host to split the response across turns.
	RequestModeMulti RequestMode = "multi"
)

// FunctionResponse is the structured result of a tool invocation.
// Every invocation produces one, on success and on failure alike; tools
// never surface raised errors to the host.
type FunctionResponse struct {
	// Text is the user-facing response content.
	Text string `json:"text"`

	// RequestMode tags how the host should deliver the text.
	RequestMode RequestMode `json:"request_mode"`
}

// TextResponse wraps plain text as a single-turn response.
// This is the normalization target for tools that return bare strings.
func TextResponse(text string) FunctionResponse {
	return FunctionResponse{
		Text:        text,
		RequestMode: RequestModeSingle,
	}
}
