package vector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestQuery(t *testing.T) {
	var gotReq queryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/query" {
			t.Errorf("path = %q, want /query", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := map[string]any{
			"result": []map[string]any{{
				"id":    "chunk_3",
				"score": 0.87,
				"metadata": map[string]any{
					"title":    "Technical Skills",
					"content":  "Python: Expert",
					"category": "skills",
					"tags":     []any{"languages", "frameworks"},
				},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Token: "tok"})
	results, err := c.Query(context.Background(), "what languages do you know", 7)
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}

	if gotReq.Data != "what languages do you know" || gotReq.TopK != 7 || !gotReq.IncludeMetadata {
		t.Errorf("request = %+v", gotReq)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.ID != "chunk_3" || r.Score != 0.87 || r.Title != "Technical Skills" ||
		r.Content != "Python: Expert" || r.Category != "skills" {
		t.Errorf("result = %+v", r)
	}
	if !reflect.DeepEqual(r.Tags, []string{"languages", "frameworks"}) {
		t.Errorf("tags = %v", r.Tags)
	}
}

func TestQuery_DefaultTopK(t *testing.T) {
	var gotReq queryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"result": []}`))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Token: "tok"})
	if _, err := c.Query(context.Background(), "anything", 0); err != nil {
		t.Fatal(err)
	}
	if gotReq.TopK != 5 {
		t.Errorf("TopK = %d, want default 5", gotReq.TopK)
	}
}

func TestQuery_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Token: "tok"})
	if _, err := c.Query(context.Background(), "anything", 5); err == nil {
		t.Error("expected error on 500")
	}
}

func TestInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/info" {
			t.Errorf("path = %q, want /info", r.URL.Path)
		}
		w.Write([]byte(`{"result": {"vectorCount": 42}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Token: "tok"})
	n, err := c.Info(context.Background())
	if err != nil {
		t.Fatalf("Info() error: %v", err)
	}
	if n != 42 {
		t.Errorf("vector count = %d, want 42", n)
	}
}
