package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ProLedger/project_ledger_app/internal/apperrors"
	"github.com/go-resty/resty/v2"
)

// Client talks to the persistence gateway, an HTTP service fronting flat
// JSON collection files. Every collection is fetched and replaced whole;
// there is no per-record endpoint and no concurrency token, so concurrent
// writers can lose updates. Callers treat a failed call as terminal: the
// client never retries.
type Client struct {
	http *resty.Client
}

// errorBody is the JSON error shape the gateway returns on non-2xx
// responses. Some deployments use "error", others "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: http}
}

// GetCollection fetches a whole collection into out.
func (c *Client) GetCollection(ctx context.Context, name string, out interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/collections/" + name)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrGatewayUnavailable, err.Error())
	}
	if err := checkResponse(resp, name); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decoding collection %s: %w", name, err)
	}
	return nil
}

// ReplaceCollection overwrites a whole collection with data.
func (c *Client) ReplaceCollection(ctx context.Context, name string, data interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(data).
		Put("/collections/" + name)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrGatewayUnavailable, err.Error())
	}
	return checkResponse(resp, name)
}

// checkResponse maps a gateway response to an error. A body that starts
// with "<" is an HTML error page from a proxy or the gateway itself; it is
// never parsed as JSON and counts as the gateway being unavailable.
func checkResponse(resp *resty.Response, name string) error {
	body := strings.TrimSpace(string(resp.Body()))
	if strings.HasPrefix(body, "<") {
		return fmt.Errorf("%w: collection %s returned an HTML page (status %d)", apperrors.ErrGatewayUnavailable, name, resp.StatusCode())
	}
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("%w: collection %s returned status %d", apperrors.ErrGatewayUnavailable, name, resp.StatusCode())
	}

	var parsed errorBody
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil {
		msg := parsed.Error
		if msg == "" {
			msg = parsed.Message
		}
		if msg != "" {
			return fmt.Errorf("gateway rejected collection %s: %s", name, msg)
		}
	}
	return fmt.Errorf("gateway rejected collection %s with status %d", name, resp.StatusCode())
}
