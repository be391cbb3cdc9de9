// Package zoho is a minimal client for the two Zoho endpoints the tool
// touches: the accounts token endpoint and the Projects time-log API.
package zoho

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const defaultAPIBaseURL = "https://projectsapi.zoho.com"

// Client talks to the Zoho accounts and Projects APIs.
type Client struct {
	httpClient  *http.Client
	authBaseURL string
	apiBaseURL  string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Tests use it to
// point the Client at stub servers.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthBaseURL overrides the accounts base URL (scheme included).
func WithAuthBaseURL(u string) Option {
	return func(c *Client) { c.authBaseURL = strings.TrimRight(u, "/") }
}

// WithAPIBaseURL overrides the Projects API base URL (scheme included).
func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

// NewClient creates a Client for the given accounts data-center host
// (e.g. "accounts.zoho.in"). timeout bounds every request; a hung call
// would otherwise hang the whole run.
func NewClient(authHost string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		authBaseURL: "https://" + authHost,
		apiBaseURL:  defaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TimeLog is one time-log entry to record against a task.
type TimeLog struct {
	// Date is "MM-DD-YYYY".
	Date string
	// Hours is "HH:MM".
	Hours      string
	BillStatus string
	Notes      string
	// Owner is the Zoho user ID the log is attributed to; empty means
	// the token's owner.
	Owner string
}

// AddLog records entry against the given task and returns the raw
// response body. Exactly one POST is issued per call, with no
// idempotency key: calling it twice creates two remote log entries.
func (c *Client) AddLog(ctx context.Context, tok *oauth2.Token, portalID, projectID, taskID string, entry TimeLog) (string, error) {
	form := url.Values{
		"date":        {entry.Date},
		"bill_status": {entry.BillStatus},
		"hours":       {entry.Hours},
		"notes":       {entry.Notes},
	}
	if entry.Owner != "" {
		form.Set("owner", entry.Owner)
	}

	endpoint := fmt.Sprintf("%s/restapi/portal/%s/projects/%s/tasks/%s/logs/",
		c.apiBaseURL, portalID, projectID, taskID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating log request: %w", err)
	}
	tok.SetAuthHeader(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("projects API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("projects API error %s: %s", resp.Status, string(body))
	}
	return string(body), nil
}
