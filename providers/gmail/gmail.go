package gmail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/input"
	"github.com/cel-ai/community-tools-go/provider"
	"github.com/cel-ai/community-tools-go/schema"
	"github.com/cel-ai/community-tools-go/tool"
	"github.com/cel-ai/community-tools-go/toolerr"
	"github.com/cel-ai/community-tools-go/types"
)

// Option customizes the gmail provider.
type Option func(*config)

type config struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithBaseURL overrides the Gmail API base URL.
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the structured logger for the provider's tools.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets the tracer used to span tool invocations.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) { c.tracer = tracer }
}

// New builds the gmail provider.
func New(opts ...Option) (*provider.Provider, error) {
	cfg := &config{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &client{baseURL: cfg.baseURL, httpClient: cfg.httpClient}

	pcfg := provider.NewConfig().
		SetName("gmail").
		SetDescription("Read, search, send, and draft Gmail messages")

	builders := []struct {
		name        string
		description string
		params      []schema.Param
		fn          tool.Func
	}{
		{
			name:        "ListMessages",
			description: "List recent messages from the user's Gmail mailbox",
			params: []schema.Param{
				schema.Integer("max_results", "Maximum number of messages to return").WithDefault(10),
				schema.String("label_ids", "Label IDs to filter by, comma-separated (e.g., 'INBOX,UNREAD')").Optional(),
			},
			fn: listMessagesFunc(c),
		},
		{
			name:        "GetMessage",
			description: "Get a single Gmail message by ID, including its text content and attachments",
			params: []schema.Param{
				schema.String("message_id", "The ID of the message to retrieve"),
			},
			fn: getMessageFunc(c),
		},
		{
			name:        "SearchMessages",
			description: "Search the user's Gmail mailbox with a Gmail query string",
			params: []schema.Param{
				schema.String("query", "Gmail search query (e.g., 'from:alice subject:invoice is:unread')"),
				schema.Integer("max_results", "Maximum number of messages to return").WithDefault(10),
			},
			fn: searchMessagesFunc(c),
		},
		{
			name:        "SendMessage",
			description: "Send an email from the user's Gmail account",
			params: []schema.Param{
				schema.String("to", "Recipient email address"),
				schema.String("subject", "Email subject line"),
				schema.String("body", "Plain-text email body"),
				schema.String("cc", "Cc recipients, comma-separated").Optional(),
				schema.String("bcc", "Bcc recipients, comma-separated").Optional(),
			},
			fn: sendMessageFunc(c),
		},
		{
			name:        "CreateDraft",
			description: "Create a draft email in the user's Gmail account",
			params: []schema.Param{
				schema.String("to", "Recipient email address"),
				schema.String("subject", "Email subject line"),
				schema.String("body", "Plain-text email body"),
				schema.String("cc", "Cc recipients, comma-separated").Optional(),
				schema.String("bcc", "Bcc recipients, comma-separated").Optional(),
			},
			fn: createDraftFunc(c),
		},
	}

	for _, b := range builders {
		t, err := tool.New(tool.NewConfig().
			SetName(b.name).
			SetDescription(b.description).
			SetAuthorization(auth.Gmail()).
			SetLogger(cfg.logger).
			SetTracer(cfg.tracer).
			SetParams(b.params...).
			SetFunc(b.fn))
		if err != nil {
			return nil, err
		}
		pcfg.AddTool(t)
	}

	return provider.New(pcfg)
}

// token extracts the OAuth2 bearer token from the invocation context.
func token(fctx *types.FunctionContext) (string, error) {
	t := fctx.Token()
	if t == "" {
		return "", toolerr.NewAuthorizationError("No authorization token provided for Gmail API access")
	}
	return t, nil
}

// fetchParsed lists messages and fetches each one in full, flattened
// for display.
func fetchParsed(ctx context.Context, c *client, tok, query string, labelIDs []string, maxResults int) ([]ParsedMessage, error) {
	page, err := c.list(ctx, tok, query, labelIDs, maxResults)
	if err != nil {
		return nil, err
	}

	parsed := make([]ParsedMessage, 0, len(page.Messages))
	for _, ref := range page.Messages {
		m, err := c.get(ctx, tok, ref.ID)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, parseMessage(m))
	}
	return parsed, nil
}

func listMessagesFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		tok, err := token(fctx)
		if err != nil {
			return nil, err
		}

		messages, err := fetchParsed(ctx, c, tok, "",
			input.StringSlice(params, "label_ids"),
			input.Int(params, "max_results", 10))
		if err != nil {
			return nil, toolerr.NewExecutionError(fmt.Sprintf("failed to list messages: %s", err))
		}

		return map[string]any{
			"message":  fmt.Sprintf("Retrieved %d messages", len(messages)),
			"messages": messages,
		}, nil
	}
}

func getMessageFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		tok, err := token(fctx)
		if err != nil {
			return nil, err
		}

		messageID := input.String(params, "message_id", "")
		m, err := c.get(ctx, tok, messageID)
		if err != nil {
			return nil, toolerr.NewExecutionError(fmt.Sprintf("failed to get message %s: %s", messageID, err))
		}

		return parseMessage(m), nil
	}
}

func searchMessagesFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		tok, err := token(fctx)
		if err != nil {
			return nil, err
		}

		query := input.String(params, "query", "")
		messages, err := fetchParsed(ctx, c, tok, query, nil,
			input.Int(params, "max_results", 10))
		if err != nil {
			return nil, toolerr.NewExecutionError(fmt.Sprintf("failed to search messages: %s", err))
		}

		return map[string]any{
			"message":  fmt.Sprintf("Found %d messages matching %q", len(messages), query),
			"query":    query,
			"messages": messages,
		}, nil
	}
}

func sendMessageFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		tok, err := token(fctx)
		if err != nil {
			return nil, err
		}

		to := input.String(params, "to", "")
		raw := buildRaw(to,
			input.String(params, "subject", ""),
			input.String(params, "body", ""),
			input.String(params, "cc", ""),
			input.String(params, "bcc", ""))

		sent, err := c.send(ctx, tok, raw)
		if err != nil {
			return nil, toolerr.NewExecutionError(fmt.Sprintf("failed to send message: %s", err))
		}

		return map[string]any{
			"message": fmt.Sprintf("Email sent to %s", to),
			"id":      sent["id"],
		}, nil
	}
}

func createDraftFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		tok, err := token(fctx)
		if err != nil {
			return nil, err
		}

		to := input.String(params, "to", "")
		raw := buildRaw(to,
			input.String(params, "subject", ""),
			input.String(params, "body", ""),
			input.String(params, "cc", ""),
			input.String(params, "bcc", ""))

		draft, err := c.createDraft(ctx, tok, raw)
		if err != nil {
			return nil, toolerr.NewExecutionError(fmt.Sprintf("failed to create draft: %s", err))
		}

		return map[string]any{
			"message": fmt.Sprintf("Draft created for %s", to),
			"id":      draft["id"],
		}, nil
	}
}
