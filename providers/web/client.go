package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.firecrawl.dev/v1"

// scrapeRequest is the Firecrawl scrape payload.
type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []Format `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	IncludeTags     []string `json:"includeTags,omitempty"`
	ExcludeTags     []string `json:"excludeTags,omitempty"`
	WaitFor         int      `json:"waitFor"`
	Timeout         int      `json:"timeout"`
}

// scrapeResponse carries per-format scrape output.
type scrapeResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

// crawlRequest is the Firecrawl crawl payload.
type crawlRequest struct {
	URL                string   `json:"url"`
	ExcludePaths       []string `json:"excludePaths,omitempty"`
	IncludePaths       []string `json:"includePaths,omitempty"`
	MaxDepth           int      `json:"maxDepth"`
	IgnoreSitemap      bool     `json:"ignoreSitemap"`
	Limit              int      `json:"limit"`
	AllowBackwardLinks bool     `json:"allowBackwardLinks"`
	AllowExternalLinks bool     `json:"allowExternalLinks"`
	Webhook            string   `json:"webhook,omitempty"`
}

// crawlStarted is the response to a crawl start request.
type crawlStarted struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// crawlStatus is the state of a running or finished crawl.
type crawlStatus struct {
	Status      string `json:"status"`
	Total       int    `json:"total"`
	Completed   int    `json:"completed"`
	CreditsUsed int    `json:"creditsUsed"`
	Next        string `json:"next"`
	Data        []any  `json:"data"`
}

// mapRequest is the Firecrawl map payload.
type mapRequest struct {
	URL               string `json:"url"`
	Search            string `json:"search,omitempty"`
	IgnoreSitemap     bool   `json:"ignoreSitemap"`
	IncludeSubdomains bool   `json:"includeSubdomains"`
	Limit             int    `json:"limit"`
}

// mapResponse lists the links discovered for a site.
type mapResponse struct {
	Success bool     `json:"success"`
	Links   []string `json:"links"`
	Error   string   `json:"error"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func (c *client) scrape(ctx context.Context, apiKey string, req scrapeRequest) (*scrapeResponse, error) {
	var resp scrapeResponse
	if err := c.do(ctx, apiKey, http.MethodPost, "/scrape", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.Error)
	}
	return &resp, nil
}

func (c *client) startCrawl(ctx context.Context, apiKey string, req crawlRequest) (*crawlStarted, error) {
	var resp crawlStarted
	if err := c.do(ctx, apiKey, http.MethodPost, "/crawl", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.Error)
	}
	return &resp, nil
}

func (c *client) crawlStatus(ctx context.Context, apiKey, crawlID string) (*crawlStatus, error) {
	var resp crawlStatus
	if err := c.do(ctx, apiKey, http.MethodGet, "/crawl/"+crawlID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *client) cancelCrawl(ctx context.Context, apiKey, crawlID string) (map[string]any, error) {
	var resp map[string]any
	if err := c.do(ctx, apiKey, http.MethodDelete, "/crawl/"+crawlID, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *client) mapURL(ctx context.Context, apiKey string, req mapRequest) (*mapResponse, error) {
	var resp mapResponse
	if err := c.do(ctx, apiKey, http.MethodPost, "/map", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, apiError(resp.Error)
	}
	return &resp, nil
}

// do issues an authenticated JSON request and decodes the response into
// out.
func (c *client) do(ctx context.Context, apiKey, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func apiError(msg string) error {
	if msg == "" {
		msg = "request was not successful"
	}
	return fmt.Errorf("firecrawl: %s", msg)
}
