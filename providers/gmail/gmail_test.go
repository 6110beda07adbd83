package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cel-ai/community-tools-go/tool"
	"github.com/cel-ai/community-tools-go/types"
)

func b64url(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func testMessage(id string) map[string]any {
	return map[string]any{
		"id":       id,
		"threadId": "thread-1",
		"labelIds": []string{"INBOX"},
		"snippet":  "Hello there",
		"payload": map[string]any{
			"mimeType": "multipart/mixed",
			"headers": []map[string]string{
				{"name": "From", "value": "alice@example.com"},
				{"name": "To", "value": "bob@example.com"},
				{"name": "Subject", "value": "Greetings"},
				{"name": "Date", "value": "Mon, 24 Aug 2026 10:00:00 +0000"},
			},
			"parts": []map[string]any{
				{
					"mimeType": "text/plain; charset=UTF-8",
					"body":     map[string]any{"data": b64url("Hello there, Bob.")},
				},
				{
					"mimeType": "application/pdf",
					"filename": "invoice.pdf",
					"body":     map[string]any{"attachmentId": "att-1", "size": 2048},
				},
			},
		},
	}
}

func newTestProvider(t *testing.T, handler http.Handler) func(name string) *tool.Tool {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := New(WithBaseURL(srv.URL))
	require.NoError(t, err)

	return func(name string) *tool.Tool {
		tl, ok := p.Tool(name)
		require.True(t, ok, "tool %s must exist", name)
		return tl
	}
}

func authorized() *types.FunctionContext {
	return types.NewFunctionContext(types.WithAuthorization("oauth-token"))
}

func TestParseMessage(t *testing.T) {
	data, err := json.Marshal(testMessage("msg-1"))
	require.NoError(t, err)

	var m message
	require.NoError(t, json.Unmarshal(data, &m))

	parsed := parseMessage(&m)
	assert.Equal(t, "msg-1", parsed.ID)
	assert.Equal(t, "alice@example.com", parsed.From)
	assert.Equal(t, "bob@example.com", parsed.To)
	assert.Equal(t, "Greetings", parsed.Subject)
	assert.Equal(t, "Hello there, Bob.", parsed.Content)

	require.Len(t, parsed.Attachments, 1)
	assert.Equal(t, "invoice.pdf", parsed.Attachments[0].Filename)
	assert.Equal(t, "att-1", parsed.Attachments[0].AttachmentID)
	assert.Equal(t, 2048, parsed.Attachments[0].Size)
}

func TestParseMessage_SinglePart(t *testing.T) {
	m := &message{
		ID: "msg-2",
		Payload: &part{
			MimeType: "text/plain",
			Headers:  []header{{Name: "Subject", Value: "Plain"}},
			Body:     partBody{Data: b64url("Just text.")},
		},
	}

	parsed := parseMessage(m)
	assert.Equal(t, "Plain", parsed.Subject)
	assert.Equal(t, "Just text.", parsed.Content)
	assert.Empty(t, parsed.Attachments)
}

func TestParseMessage_NestedParts(t *testing.T) {
	m := &message{
		ID: "msg-3",
		Payload: &part{
			MimeType: "multipart/mixed",
			Parts: []*part{
				{
					MimeType: "multipart/alternative",
					Parts: []*part{
						{MimeType: "text/plain", Body: partBody{Data: b64url("nested body")}},
						{MimeType: "text/html", Body: partBody{Data: b64url("<p>nested body</p>")}},
					},
				},
			},
		},
	}

	parsed := parseMessage(m)
	assert.Equal(t, "nested body", parsed.Content, "text/plain must be found in nested parts, html ignored")
}

func TestBuildRaw(t *testing.T) {
	raw := buildRaw("bob@example.com", "Hi", "Body text", "carol@example.com", "")

	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)

	text := string(decoded)
	assert.Contains(t, text, "To: bob@example.com\r\n")
	assert.Contains(t, text, "Cc: carol@example.com\r\n")
	assert.NotContains(t, text, "Bcc:")
	assert.Contains(t, text, "Subject: Hi\r\n")
	assert.True(t, strings.HasSuffix(text, "\r\nBody text"))
}

func TestListMessages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer oauth-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("maxResults"))
		assert.Equal(t, []string{"INBOX", "UNREAD"}, r.URL.Query()["labelIds"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]string{{"id": "msg-1"}, {"id": "msg-2"}},
		})
	})
	mux.HandleFunc("GET /users/me/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(testMessage(r.PathValue("id")))
	})

	lookup := newTestProvider(t, mux)

	resp := lookup("ListMessages").Invoke(context.Background(), nil, map[string]any{
		"max_results": 2,
		"label_ids":   "INBOX,UNREAD",
	}, authorized())

	var result struct {
		Message  string          `json:"message"`
		Messages []ParsedMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &result))
	assert.Equal(t, "Retrieved 2 messages", result.Message)
	require.Len(t, result.Messages, 2)
	assert.Equal(t, "msg-1", result.Messages[0].ID)
	assert.Equal(t, "Hello there, Bob.", result.Messages[0].Content)
}

func TestGetMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/me/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "full", r.URL.Query().Get("format"))
		_ = json.NewEncoder(w).Encode(testMessage(r.PathValue("id")))
	})

	lookup := newTestProvider(t, mux)

	resp := lookup("GetMessage").Invoke(context.Background(), nil,
		map[string]any{"message_id": "msg-7"}, authorized())

	var parsed ParsedMessage
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &parsed))
	assert.Equal(t, "msg-7", parsed.ID)
	assert.Equal(t, "Greetings", parsed.Subject)
}

func TestSearchMessages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "from:alice", r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]string{{"id": "msg-1"}},
		})
	})
	mux.HandleFunc("GET /users/me/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(testMessage(r.PathValue("id")))
	})

	lookup := newTestProvider(t, mux)

	resp := lookup("SearchMessages").Invoke(context.Background(), nil,
		map[string]any{"query": "from:alice"}, authorized())

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &result))
	assert.Equal(t, `Found 1 messages matching "from:alice"`, result["message"])
}

func TestSendMessage(t *testing.T) {
	var gotRaw string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/me/messages/send", func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotRaw = req.Raw
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "sent-1"})
	})

	lookup := newTestProvider(t, mux)

	resp := lookup("SendMessage").Invoke(context.Background(), nil, map[string]any{
		"to":      "bob@example.com",
		"subject": "Hi",
		"body":    "Body text",
	}, authorized())

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &result))
	assert.Equal(t, "Email sent to bob@example.com", result["message"])
	assert.Equal(t, "sent-1", result["id"])

	decoded, err := base64.URLEncoding.DecodeString(gotRaw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Subject: Hi")
}

func TestCreateDraft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/me/drafts", func(w http.ResponseWriter, r *http.Request) {
		var req draftRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Message.Raw)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "draft-1"})
	})

	lookup := newTestProvider(t, mux)

	resp := lookup("CreateDraft").Invoke(context.Background(), nil, map[string]any{
		"to":      "bob@example.com",
		"subject": "Draft",
		"body":    "Draft body",
	}, authorized())

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Text), &result))
	assert.Equal(t, "Draft created for bob@example.com", result["message"])
	assert.Equal(t, "draft-1", result["id"])
}

func TestMissingToken(t *testing.T) {
	lookup := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("API must not be called without a token")
	}))

	resp := lookup("ListMessages").Invoke(context.Background(), nil, nil, types.NewFunctionContext())
	assert.Contains(t, resp.Text, "Authorization failed:")
}

func TestUpstreamError(t *testing.T) {
	lookup := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	resp := lookup("GetMessage").Invoke(context.Background(), nil,
		map[string]any{"message_id": "msg-1"}, authorized())

	assert.Contains(t, resp.Text, "Error: failed to get message msg-1:")
}
