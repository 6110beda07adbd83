package gmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const defaultBaseURL = "https://gmail.googleapis.com/gmail/v1"

// listResponse is the Gmail message-list page shape.
type listResponse struct {
	Messages []struct {
		ID       string `json:"id"`
		ThreadID string `json:"threadId"`
	} `json:"messages"`
	ResultSizeEstimate int `json:"resultSizeEstimate"`
}

// sendRequest wraps an encoded RFC 2822 message for sending.
type sendRequest struct {
	Raw string `json:"raw"`
}

// draftRequest wraps an encoded message for draft creation.
type draftRequest struct {
	Message sendRequest `json:"message"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// list fetches a page of message IDs matching the query and labels.
func (c *client) list(ctx context.Context, token, query string, labelIDs []string, maxResults int) (*listResponse, error) {
	q := url.Values{}
	q.Set("maxResults", strconv.Itoa(maxResults))
	if query != "" {
		q.Set("q", query)
	}
	for _, id := range labelIDs {
		q.Add("labelIds", id)
	}

	var resp listResponse
	if err := c.do(ctx, token, http.MethodGet, "/users/me/messages?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get fetches a single message with its full payload.
func (c *client) get(ctx context.Context, token, messageID string) (*message, error) {
	var m message
	if err := c.do(ctx, token, http.MethodGet, "/users/me/messages/"+messageID+"?format=full", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// send sends an encoded message and returns the created resource.
func (c *client) send(ctx context.Context, token, raw string) (map[string]any, error) {
	var resp map[string]any
	if err := c.do(ctx, token, http.MethodPost, "/users/me/messages/send", sendRequest{Raw: raw}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// createDraft stores an encoded message as a draft.
func (c *client) createDraft(ctx context.Context, token, raw string) (map[string]any, error) {
	var resp map[string]any
	if err := c.do(ctx, token, http.MethodPost, "/users/me/drafts", draftRequest{Message: sendRequest{Raw: raw}}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// do issues an authenticated JSON request against the Gmail API.
func (c *client) do(ctx context.Context, token, method, path string, body, out any) error {
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
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gmail api: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
