package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apicore "github.com/LuizRMSilva1973/projeto-pastelaria/api/core"
)

func TestClientSubmitOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Client string              `json:"client"`
			Items  []apicore.OrderItem `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Client != "Ana" || len(body.Items) != 1 || body.Items[0].Flavor != "CARNE" {
			t.Errorf("unexpected body %+v", body)
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(apicore.OrderResult{
			OrderID: "o-1",
			Tasks:   []apicore.Task{{ID: 1, Flavor: "CARNE", Quantity: 3, MachineID: 1}},
		})
	}))
	defer server.Close()

	c := New(server.URL+"/", time.Second)
	out, err := c.SubmitOrder(context.Background(), apicore.Order{
		Client: "Ana",
		Items:  []apicore.OrderItem{{Flavor: "CARNE", Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if out.OrderID != "o-1" || len(out.Tasks) != 1 {
		t.Fatalf("unexpected result %+v", out)
	}
}

func TestClientErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad arguments: client is required"}`))
	}))
	defer server.Close()

	_, err := New(server.URL, time.Second).SubmitOrder(context.Background(), apicore.Order{})
	if !IsBadRequest(err) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if got := err.Error(); got != "api: 400 bad arguments: client is required" {
		t.Fatalf("unexpected error text %q", got)
	}
}

func TestClientMachineQueueAndComplete(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/machines/2/queue", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(apicore.MachineQueue{
			Machine: apicore.Machine{ID: 2, Slug: "m2"},
			Load:    7,
			Tasks:   []apicore.Task{{ID: 4, Quantity: 7, MachineID: 2}},
		})
	})
	mux.HandleFunc("POST /api/tasks/4/complete", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(apicore.CompleteResult{Changed: true, Task: &apicore.Task{ID: 4, Status: apicore.StatusDone}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := New(server.URL, time.Second)

	q, err := c.MachineQueue(context.Background(), 2)
	if err != nil {
		t.Fatalf("MachineQueue returned error: %v", err)
	}
	if q.Load != 7 || len(q.Tasks) != 1 {
		t.Fatalf("unexpected queue %+v", q)
	}

	res, err := c.CompleteTask(context.Background(), 4)
	if err != nil {
		t.Fatalf("CompleteTask returned error: %v", err)
	}
	if !res.Changed || res.Task == nil || res.Task.Status != apicore.StatusDone {
		t.Fatalf("unexpected completion %+v", res)
	}
}
