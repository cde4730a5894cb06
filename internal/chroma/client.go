// Package chroma is a minimal client for the chroma REST API, covering the
// two calls this server needs: listing collections and similarity queries.
package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

var ErrNoResult = errors.New("collection returned no documents")

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ListCollections returns the raw JSON collection list, passed through to the
// admin page unchanged.
func (c *Client) ListCollections(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/api/v1/collections")
}

// Query runs a similarity search against the named collection and returns the
// top document together with its url metadata field.
func (c *Client) Query(ctx context.Context, collection, text string) (string, string, error) {
	colBody, err := c.get(ctx, "/api/v1/collections/"+url.PathEscape(collection))
	if err != nil {
		return "", "", err
	}
	colID := gjson.GetBytes(colBody, "id").String()
	if colID == "" {
		return "", "", fmt.Errorf("collection %q not found", collection)
	}

	payload, err := json.Marshal(map[string]any{
		"query_texts": []string{text},
		"n_results":   2,
		"include":     []string{"documents", "metadatas"},
	})
	if err != nil {
		return "", "", err
	}

	resBody, err := c.post(ctx, "/api/v1/collections/"+colID+"/query", payload)
	if err != nil {
		return "", "", err
	}

	doc := gjson.GetBytes(resBody, "documents.0.0")
	if !doc.Exists() {
		return "", "", ErrNoResult
	}
	return doc.String(), gjson.GetBytes(resBody, "metadatas.0.0.url").String(), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chroma request failed: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("chroma response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chroma returned status %d for %s", resp.StatusCode, req.URL.Path)
	}
	return b, nil
}
