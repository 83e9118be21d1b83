package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "key", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	return c, srv
}

func completion(content string) string {
	return `{"choices": [{"message": {"content": ` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestNewClient(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("expected error without API key")
	}

	c, err := NewClient(Config{APIKey: "key"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), DefaultModel)
	}
}

func TestGenerate(t *testing.T) {
	var gotReq chatRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(completion("I build data pipelines.")))
	})

	got, err := c.Generate(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "I build data pipelines." {
		t.Errorf("Generate() = %q", got)
	}

	if gotReq.Model != DefaultModel {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 ||
		gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "system text" ||
		gotReq.Messages[1].Role != "user" || gotReq.Messages[1].Content != "user text" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestGenerate_RetriesServerError(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(completion("recovered")))
	})

	got, err := c.Generate(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "recovered" {
		t.Errorf("Generate() = %q", got)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestGenerate_RetriesRateLimit(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(completion("eventually")))
	})

	got, err := c.Generate(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "eventually" || attempts != 3 {
		t.Errorf("got %q after %d attempts", got, attempts)
	}
}

func TestGenerate_ExhaustsRetries(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := c.Generate(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4 (initial plus 3 retries)", attempts)
	}
}

func TestGenerate_ClientErrorNotRetried(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	if _, err := c.Generate(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error on 400")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestGenerate_NoChoices(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})
	if _, err := c.Generate(context.Background(), "s", "u"); err == nil {
		t.Error("expected error for empty choices")
	}
}
