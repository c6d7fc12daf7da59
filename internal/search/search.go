// Package search calls the remote semantic search service over lecture
// content.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Reranking policy. Fixed for this assistant, not user-configurable.
const (
	numBlocksToRerank = 10
	numBlocks         = 3
)

// ErrSearchFailed signals a non-200 response from the search service.
var ErrSearchFailed = errors.New("semantic search request failed")

// Client issues semantic search requests against a fixed endpoint
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		URL:        url,
		HTTPClient: http.DefaultClient,
	}
}

type searchRequest struct {
	Query             []string `json:"query"`
	Rerank            bool     `json:"rerank"`
	NumBlocksToRerank int      `json:"num_blocks_to_rerank"`
	NumBlocks         int      `json:"num_blocks"`
}

// Search sends query to the search service with reranking enabled and
// returns the ranked-results payload verbatim. A single attempt is made;
// any non-200 status or transport error is a failure.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	payload := searchRequest{
		Query:             []string{query},
		Rerank:            true,
		NumBlocksToRerank: numBlocksToRerank,
		NumBlocks:         numBlocks,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	return json.RawMessage(data), nil
}
