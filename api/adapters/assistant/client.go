package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

var (
	ErrNotConfigured = errors.New("assistant base URL is not configured")
	ErrCoolingDown   = errors.New("assistant disabled after repeated failures")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxFailures int
	Cooldown    time.Duration
}

// Client talks to any OpenAI compatible chat/completions endpoint. BaseURL may
// list several endpoints; they are tried in order.
type Client struct {
	log      *slog.Logger
	baseURLs []string
	model    string
	apiKey   string
	http     *http.Client
	guard    *Guard
}

func NewClient(log *slog.Logger, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		log:      log,
		baseURLs: splitBaseURLs(opts.BaseURL),
		model:    opts.Model,
		apiKey:   opts.APIKey,
		guard:    NewGuard(opts.MaxFailures, opts.Cooldown),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          20,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

func (c *Client) Ask(ctx context.Context, snapshot string, history []apicore.ChatTurn, message string) (string, error) {
	if len(c.baseURLs) == 0 {
		return "", ErrNotConfigured
	}
	if !c.guard.Allow() {
		return "", fmt.Errorf("%w until %s", ErrCoolingDown, c.guard.DisabledUntil().Format(time.TimeOnly))
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    buildMessages(snapshot, history, message),
		Temperature: 0.4,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	failures := make([]string, 0, len(c.baseURLs))
	for _, baseURL := range c.baseURLs {
		text, err := c.chatAtEndpoint(ctx, baseURL+"/chat/completions", payload)
		if err == nil {
			c.guard.RecordSuccess()
			return text, nil
		}
		c.log.Debug("assistant endpoint failed", "endpoint", baseURL, "error", err)
		failures = append(failures, fmt.Sprintf("%s (%v)", baseURL, err))
	}

	c.guard.RecordFailure()
	return "", fmt.Errorf("assistant request failed across endpoints: %s", strings.Join(failures, " | "))
}

// Ping reports whether Ask would currently reach out to an endpoint. It does
// not touch the network.
func (c *Client) Ping(context.Context) error {
	if len(c.baseURLs) == 0 {
		return ErrNotConfigured
	}
	if !c.guard.Allow() {
		return ErrCoolingDown
	}
	return nil
}

func (c *Client) chatAtEndpoint(ctx context.Context, endpoint string, payload []byte) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(request)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %s", resp.Status)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("response missing choices")
	}
	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("response empty")
	}
	return content, nil
}

func normalizeBaseURL(baseURL string) string {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return trimmed
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if strings.HasSuffix(trimmed, "/v1") {
		return trimmed
	}
	return trimmed + "/v1"
}

func splitBaseURLs(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t'
	})
	out := make([]string, 0, len(tokens))
	seen := map[string]struct{}{}
	for _, token := range tokens {
		normalized := normalizeBaseURL(token)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

var _ apicore.Assistant = (*Client)(nil)
