package web

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
	"github.com/cel-ai/community-tools-go/types"
)

// previewLimit caps how much scraped content is echoed back per format.
const previewLimit = 500

// Option customizes the web provider.
type Option func(*config)

type config struct {
	baseURL      string
	httpClient   *http.Client
	logger       *slog.Logger
	tracer       trace.Tracer
	pollInterval time.Duration
}

// WithBaseURL overrides the Firecrawl API base URL.
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

// WithPollInterval sets how often synchronous crawls poll for
// completion.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// New builds the web provider.
func New(opts ...Option) (*provider.Provider, error) {
	cfg := &config{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   60 * time.Second,
		},
		logger:       slog.New(slog.DiscardHandler),
		pollInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &client{baseURL: cfg.baseURL, httpClient: cfg.httpClient}

	pcfg := provider.NewConfig().
		SetName("web").
		SetDescription("Website scraping, crawling, and mapping via Firecrawl")

	builders := []struct {
		name        string
		description string
		params      []schema.Param
		fn          tool.Func
	}{
		{
			name:        "ScrapeURL",
			description: "Scrape a URL using Firecrawl and return the data in specified formats",
			params: []schema.Param{
				schema.String("url", "URL to scrape"),
				schema.String("formats", "Formats to retrieve as comma-separated string (markdown, html, rawHtml, links, screenshot, screenshot@fullPage). Defaults to 'markdown'.").Optional(),
				schema.Bool("only_main_content", "Only return the main content of the page excluding headers, navs, footers, etc.").Optional(),
				schema.String("include_tags", "List of tags to include in the output, comma-separated").Optional(),
				schema.String("exclude_tags", "List of tags to exclude from the output, comma-separated").Optional(),
				schema.Integer("wait_for", "Specify a delay in milliseconds before fetching the content").Optional(),
				schema.Integer("timeout", "Timeout in milliseconds for the request").Optional(),
			},
			fn: scrapeURLFunc(c),
		},
		{
			name:        "CrawlWebsite",
			description: "Crawl a website using Firecrawl",
			params: []schema.Param{
				schema.String("url", "URL to crawl"),
				schema.String("exclude_paths", "URL patterns to exclude from the crawl, comma-separated").Optional(),
				schema.String("include_paths", "URL patterns to include in the crawl, comma-separated").Optional(),
				schema.Integer("max_depth", "Maximum depth to crawl relative to the entered URL").Optional(),
				schema.Bool("ignore_sitemap", "Ignore the website sitemap when crawling").Optional(),
				schema.Integer("limit", "Limit the number of pages to crawl").Optional(),
				schema.Bool("allow_backward_links", "Enable navigation to previously linked pages").Optional(),
				schema.Bool("allow_external_links", "Allow following links to external websites").Optional(),
				schema.String("webhook", "The URL to send a POST request to when the crawl is completed").Optional(),
				schema.Bool("async_crawl", "Run the crawl asynchronously").Optional(),
			},
			fn: crawlWebsiteFunc(c, cfg.pollInterval),
		},
		{
			name:        "GetCrawlStatus",
			description: "Get the status of a Firecrawl crawl",
			params: []schema.Param{
				schema.String("crawl_id", "The ID of the crawl job"),
			},
			fn: getCrawlStatusFunc(c),
		},
		{
			name:        "GetCrawlData",
			description: "Get the data of a Firecrawl crawl",
			params: []schema.Param{
				schema.String("crawl_id", "The ID of the crawl job"),
			},
			fn: getCrawlDataFunc(c),
		},
		{
			name:        "CancelCrawl",
			description: "Cancel an asynchronous crawl job",
			params: []schema.Param{
				schema.String("crawl_id", "The ID of the asynchronous crawl job to cancel"),
			},
			fn: cancelCrawlFunc(c),
		},
		{
			name:        "MapWebsite",
			description: "Map a website to discover its structure",
			params: []schema.Param{
				schema.String("url", "The base URL to start crawling from"),
				schema.String("search", "Search query to use for mapping").Optional(),
				schema.Bool("ignore_sitemap", "Ignore the website sitemap when crawling").Optional(),
				schema.Bool("include_subdomains", "Include subdomains of the website").Optional(),
				schema.Integer("limit", "Maximum number of links to return").Optional(),
			},
			fn: mapWebsiteFunc(c),
		},
	}

	for _, b := range builders {
		t, err := tool.New(tool.NewConfig().
			SetName(b.name).
			SetDescription(b.description).
			SetRequiredSecrets(auth.EnvFirecrawlAPIKey).
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

// resolveKey fetches the Firecrawl API key, returning the original
// missing-key response text when it is absent.
func resolveKey(fctx *types.FunctionContext) (string, string) {
	apiKey, ok := types.LookupSecret(fctx, auth.EnvFirecrawlAPIKey)
	if !ok || apiKey == "" {
		return "", fmt.Sprintf("Error: %s environment variable is required but not found.", auth.EnvFirecrawlAPIKey)
	}
	return apiKey, ""
}

// preview truncates long text content for conversational display.
func preview(content string) string {
	if len(content) > previewLimit {
		return content[:previewLimit] + "... [content truncated]"
	}
	return content
}

func scrapeURLFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, missing := resolveKey(fctx)
		if missing != "" {
			return missing, nil
		}

		url := input.String(params, "url", "")
		formats := ParseFormats(input.String(params, "formats", "markdown"))

		resp, err := c.scrape(ctx, apiKey, scrapeRequest{
			URL:             url,
			Formats:         formats,
			OnlyMainContent: input.Bool(params, "only_main_content", true),
			IncludeTags:     input.StringSlice(params, "include_tags"),
			ExcludeTags:     input.StringSlice(params, "exclude_tags"),
			WaitFor:         input.Int(params, "wait_for", 10),
			Timeout:         input.Int(params, "timeout", 30000),
		})
		if err != nil {
			return fmt.Sprintf("Error scraping URL %s: %s", url, err), nil
		}

		result := map[string]any{
			"url":     url,
			"formats": formats,
		}
		retrieved := false
		for _, f := range formats {
			content, ok := resp.Data[string(f)]
			if !ok {
				continue
			}
			retrieved = true
			if f.IsScreenshot() {
				result[string(f)] = "[Base64 screenshot data available]"
			} else if text, isText := content.(string); isText {
				result[string(f)] = preview(text)
			} else {
				result[string(f)] = content
			}
		}
		if !retrieved {
			return fmt.Sprintf("No content was retrieved from %s in the specified formats.", url), nil
		}

		result["message"] = fmt.Sprintf("Successfully scraped content from %s", url)
		return result, nil
	}
}

func crawlWebsiteFunc(c *client, pollInterval time.Duration) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, missing := resolveKey(fctx)
		if missing != "" {
			return missing, nil
		}

		url := input.String(params, "url", "")
		req := crawlRequest{
			URL:                url,
			ExcludePaths:       input.StringSlice(params, "exclude_paths"),
			IncludePaths:       input.StringSlice(params, "include_paths"),
			MaxDepth:           input.Int(params, "max_depth", 2),
			IgnoreSitemap:      input.Bool(params, "ignore_sitemap", true),
			Limit:              input.Int(params, "limit", 10),
			AllowBackwardLinks: input.Bool(params, "allow_backward_links", false),
			AllowExternalLinks: input.Bool(params, "allow_external_links", false),
			Webhook:            input.String(params, "webhook", ""),
		}

		started, err := c.startCrawl(ctx, apiKey, req)
		if err != nil {
			return fmt.Sprintf("Error crawling website %s: %s", url, err), nil
		}

		if input.Bool(params, "async_crawl", true) {
			return map[string]any{
				"message":  fmt.Sprintf("Async crawl started for %s", url),
				"crawl_id": started.ID,
				"status":   "started",
			}, nil
		}

		status, err := awaitCrawl(ctx, c, apiKey, started.ID, pollInterval)
		if err != nil {
			return fmt.Sprintf("Error crawling website %s: %s", url, err), nil
		}
		return map[string]any{
			"message":       fmt.Sprintf("Completed crawl for %s", url),
			"pages_crawled": len(status.Data),
			"status":        status.Status,
		}, nil
	}
}

// awaitCrawl polls a crawl until it leaves the in-progress states or
// the context is done.
func awaitCrawl(ctx context.Context, c *client, apiKey, crawlID string, interval time.Duration) (*crawlStatus, error) {
	for {
		status, err := c.crawlStatus(ctx, apiKey, crawlID)
		if err != nil {
			return nil, err
		}
		if status.Status != "scraping" && status.Status != "pending" {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

func getCrawlStatusFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, missing := resolveKey(fctx)
		if missing != "" {
			return missing, nil
		}

		crawlID := input.String(params, "crawl_id", "")
		status, err := c.crawlStatus(ctx, apiKey, crawlID)
		if err != nil {
			return fmt.Sprintf("Error getting crawl status for crawl ID %s: %s", crawlID, err), nil
		}

		result := map[string]any{
			"message":      fmt.Sprintf("Crawl status retrieved for ID: %s", crawlID),
			"crawl_id":     crawlID,
			"status":       status.Status,
			"total":        status.Total,
			"completed":    status.Completed,
			"credits_used": status.CreditsUsed,
		}
		// Page payloads are deliberately withheld here.
		if len(status.Data) > 0 {
			result["data_message"] = fmt.Sprintf(
				"Data is available. Use GetCrawlData to retrieve it. Size: %d", len(status.Data))
		}
		return result, nil
	}
}

func getCrawlDataFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, missing := resolveKey(fctx)
		if missing != "" {
			return missing, nil
		}

		crawlID := input.String(params, "crawl_id", "")
		status, err := c.crawlStatus(ctx, apiKey, crawlID)
		if err != nil {
			return fmt.Sprintf("Error getting crawl data for crawl ID %s: %s", crawlID, err), nil
		}

		if status.Next != "" {
			return map[string]any{
				"message":      "Crawl data is too large for direct retrieval. Use the next_url to paginate.",
				"crawl_id":     crawlID,
				"next_url":     status.Next,
				"data_preview": "Data exceeds 10MB limit",
			}, nil
		}

		sample := status.Data
		if len(sample) > 3 {
			sample = sample[:3]
		}
		return map[string]any{
			"message":      fmt.Sprintf("Retrieved %d pages of crawl data for ID: %s", len(status.Data), crawlID),
			"crawl_id":     crawlID,
			"total_pages":  len(status.Data),
			"sample_pages": sample,
		}, nil
	}
}

func cancelCrawlFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, missing := resolveKey(fctx)
		if missing != "" {
			return missing, nil
		}

		crawlID := input.String(params, "crawl_id", "")
		cancellation, err := c.cancelCrawl(ctx, apiKey, crawlID)
		if err != nil {
			return fmt.Sprintf("Error cancelling crawl with ID %s: %s", crawlID, err), nil
		}

		result := map[string]any{
			"message":  fmt.Sprintf("Crawl with ID %s has been cancelled", crawlID),
			"crawl_id": crawlID,
		}
		for k, v := range cancellation {
			if _, taken := result[k]; !taken {
				result[k] = v
			}
		}
		return result, nil
	}
}

func mapWebsiteFunc(c *client) tool.Func {
	return func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		apiKey, missing := resolveKey(fctx)
		if missing != "" {
			return missing, nil
		}

		url := input.String(params, "url", "")
		resp, err := c.mapURL(ctx, apiKey, mapRequest{
			URL:               url,
			Search:            input.String(params, "search", ""),
			IgnoreSitemap:     input.Bool(params, "ignore_sitemap", true),
			IncludeSubdomains: input.Bool(params, "include_subdomains", false),
			Limit:             input.Int(params, "limit", 5000),
		})
		if err != nil {
			return fmt.Sprintf("Error mapping website %s: %s", url, err), nil
		}

		sample := resp.Links
		if len(sample) > 5 {
			sample = sample[:5]
		}
		return map[string]any{
			"message":      fmt.Sprintf("Successfully mapped %d links from %s", len(resp.Links), url),
			"url":          url,
			"total_links":  len(resp.Links),
			"sample_links": sample,
		}, nil
	}
}
