// Package vector implements a minimal REST client for an Upstash-style
// vector index with built-in embeddings: queries send raw text and the
// service embeds server-side.
package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tylorle/twin/internal/engine"
)

// Client talks to one vector index over REST.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// Config configures the vector client. URL and Token come from the
// UPSTASH_VECTOR_REST_URL / UPSTASH_VECTOR_REST_TOKEN environment in normal
// operation.
type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// NewClient creates a vector search client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		url:    cfg.URL,
		token:  cfg.Token,
		client: &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Data            string `json:"data"`
	TopK            int    `json:"topK"`
	IncludeMetadata bool   `json:"includeMetadata"`
}

type queryResponse struct {
	Result []struct {
		ID       string         `json:"id"`
		Score    float64        `json:"score"`
		Metadata map[string]any `json:"metadata"`
	} `json:"result"`
}

// Query runs a semantic search and flattens the metadata payload into
// results. Callers treat any error as "no results".
func (c *Client) Query(ctx context.Context, text string, topK int) ([]engine.Result, error) {
	if topK <= 0 {
		topK = 5
	}
	req := queryRequest{Data: text, TopK: topK, IncludeMetadata: true}
	var resp queryResponse
	if err := c.postJSON(ctx, c.url+"/query", req, &resp); err != nil {
		return nil, err
	}
	results := make([]engine.Result, 0, len(resp.Result))
	for _, r := range resp.Result {
		res := engine.Result{ID: r.ID, Score: r.Score}
		if v, ok := r.Metadata["title"].(string); ok {
			res.Title = v
		}
		if v, ok := r.Metadata["content"].(string); ok {
			res.Content = v
		}
		if v, ok := r.Metadata["category"].(string); ok {
			res.Category = v
		}
		if tags, ok := r.Metadata["tags"].([]any); ok {
			for _, t := range tags {
				if s, ok := t.(string); ok {
					res.Tags = append(res.Tags, s)
				}
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// Info returns the number of vectors in the index, for diagnostics.
func (c *Client) Info(ctx context.Context) (int, error) {
	var resp struct {
		Result struct {
			VectorCount int `json:"vectorCount"`
		} `json:"result"`
	}
	if err := c.postJSON(ctx, c.url+"/info", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Result.VectorCount, nil
}

func (c *Client) postJSON(ctx context.Context, url string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("vector POST %s failed: %s", url, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
