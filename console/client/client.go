// Package client is the console's view of the API gateway.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

// APIError carries the gateway's {"error": "..."} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Catalog(ctx context.Context) (apicore.Catalog, error) {
	var out apicore.Catalog
	err := c.do(ctx, http.MethodGet, "/api/catalog", nil, &out)
	return out, err
}

func (c *Client) Report(ctx context.Context) (apicore.Report, error) {
	var out apicore.Report
	err := c.do(ctx, http.MethodGet, "/api/report", nil, &out)
	return out, err
}

func (c *Client) MachineQueue(ctx context.Context, machineID int64) (apicore.MachineQueue, error) {
	var out apicore.MachineQueue
	err := c.do(ctx, http.MethodGet, "/api/machines/"+strconv.FormatInt(machineID, 10)+"/queue", nil, &out)
	return out, err
}

func (c *Client) SubmitOrder(ctx context.Context, o apicore.Order) (apicore.OrderResult, error) {
	body := map[string]any{
		"client": o.Client,
		"origin": o.Origin,
		"items":  o.Items,
	}
	var out apicore.OrderResult
	err := c.do(ctx, http.MethodPost, "/api/orders", body, &out)
	return out, err
}

func (c *Client) ImportOrder(ctx context.Context, origin string) (apicore.OrderResult, error) {
	var out apicore.OrderResult
	err := c.do(ctx, http.MethodPost, "/api/orders/import", map[string]string{"origin": origin}, &out)
	return out, err
}

func (c *Client) CompleteTask(ctx context.Context, id int64) (apicore.CompleteResult, error) {
	var out apicore.CompleteResult
	err := c.do(ctx, http.MethodPost, "/api/tasks/"+strconv.FormatInt(id, 10)+"/complete", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsBadRequest reports whether the gateway rejected the input.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}
