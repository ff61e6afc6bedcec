package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

const testSnapshot = "Sabores disponíveis (2): CARNE, QUEIJO\nMáquinas: Máquina 01 (Principal)"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func replyWith(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}
}

func TestSplitBaseURLs(t *testing.T) {
	t.Parallel()

	got := splitBaseURLs("localhost:1234/v1, http://llm.internal:8000/ ;localhost:1234")
	want := []string{"http://localhost:1234/v1", "http://llm.internal:8000/v1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d unique URLs, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("url %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestClientAsk_SendsGroundedConversation(t *testing.T) {
	t.Parallel()

	var got chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		replyWith(t, "Temos 2 sabores.")(w, r)
	}))
	defer server.Close()

	client := NewClient(discardLogger(), Options{BaseURL: server.URL, APIKey: "secret", Model: "test-model", Timeout: 5 * time.Second})

	history := []apicore.ChatTurn{
		{Role: apicore.RoleModel, Text: "Olá!"},
		{Role: apicore.RoleUser, Text: "Oi"},
	}
	reply, err := client.Ask(context.Background(), testSnapshot, history, "Quantos sabores?")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if reply != "Temos 2 sabores." {
		t.Fatalf("unexpected reply %q", reply)
	}

	if got.Model != "test-model" {
		t.Fatalf("expected model test-model, got %q", got.Model)
	}
	if len(got.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || !strings.Contains(got.Messages[0].Content, "CARNE, QUEIJO") {
		t.Fatalf("expected grounded system message, got %+v", got.Messages[0])
	}
	wantRoles := []string{"system", "assistant", "user", "user"}
	for i, role := range wantRoles {
		if got.Messages[i].Role != role {
			t.Fatalf("message %d: expected role %s, got %s", i, role, got.Messages[i].Role)
		}
	}
	if got.Messages[3].Content != "Quantos sabores?" {
		t.Fatalf("expected the question last, got %q", got.Messages[3].Content)
	}
}

func TestClientAsk_FallsBackToSecondEndpoint(t *testing.T) {
	t.Parallel()

	okServer := httptest.NewServer(replyWith(t, "ok-second-endpoint"))
	defer okServer.Close()

	client := NewClient(discardLogger(), Options{BaseURL: "http://127.0.0.1:1/v1, " + okServer.URL + "/v1", Timeout: 5 * time.Second})

	reply, err := client.Ask(context.Background(), testSnapshot, nil, "ping")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if reply != "ok-second-endpoint" {
		t.Fatalf("unexpected reply %q", reply)
	}
}

func TestClientAsk_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "no_choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "empty_content",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  "}}]}`))
			},
		},
		{
			name: "invalid_json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := NewClient(discardLogger(), Options{BaseURL: server.URL, Timeout: 5 * time.Second})
			if _, err := client.Ask(context.Background(), testSnapshot, nil, "oi"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClientAsk_NotConfigured(t *testing.T) {
	t.Parallel()

	client := NewClient(discardLogger(), Options{})
	if _, err := client.Ask(context.Background(), testSnapshot, nil, "oi"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClientAsk_GuardSkipsEndpointAfterFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(discardLogger(), Options{BaseURL: server.URL, MaxFailures: 2, Cooldown: time.Hour, Timeout: 5 * time.Second})

	for i := 0; i < 2; i++ {
		if _, err := client.Ask(context.Background(), testSnapshot, nil, "oi"); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	_, err := client.Ask(context.Background(), testSnapshot, nil, "oi")
	if !errors.Is(err, ErrCoolingDown) {
		t.Fatalf("expected ErrCoolingDown, got %v", err)
	}
	if n := hits.Load(); n != 2 {
		t.Fatalf("expected 2 requests to reach the endpoint, got %d", n)
	}
	if err := client.Ping(context.Background()); !errors.Is(err, ErrCoolingDown) {
		t.Fatalf("expected Ping to report cooldown, got %v", err)
	}
}

func TestClientPing(t *testing.T) {
	t.Parallel()

	if err := NewClient(discardLogger(), Options{}).Ping(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := NewClient(discardLogger(), Options{BaseURL: "http://127.0.0.1:1/v1"}).Ping(context.Background()); err != nil {
		t.Fatalf("expected configured client to be ready, got %v", err)
	}
}

func TestSystemInstruction(t *testing.T) {
	t.Parallel()

	got := SystemInstruction(testSnapshot)
	for _, want := range []string{
		"Pastelaria Production System",
		"- Sabores disponíveis (2): CARNE, QUEIJO",
		"- Máquinas: Máquina 01 (Principal)",
		"regra das 8h",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected instruction to contain %q:\n%s", want, got)
		}
	}
}
