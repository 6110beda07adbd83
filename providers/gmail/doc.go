// Package gmail provides the Gmail tool provider.
//
// Five tools are exposed: ListMessages, GetMessage, SearchMessages,
// SendMessage, and CreateDraft. All of them call the Gmail REST API
// with the OAuth2 bearer token supplied through the invocation
// context; there is no environment fallback for Gmail credentials.
// Fetched messages are parsed into a flat shape with the common
// headers, the text/plain content, and an attachment inventory.
package gmail
