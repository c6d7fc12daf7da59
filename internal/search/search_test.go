package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch_RequestShape(t *testing.T) {
	var got searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Search(context.Background(), "what is recursion"); err != nil {
		t.Fatal(err)
	}

	if len(got.Query) != 1 || got.Query[0] != "what is recursion" {
		t.Errorf("unexpected query: %v", got.Query)
	}
	if !got.Rerank {
		t.Error("rerank should be enabled")
	}
	if got.NumBlocksToRerank != 10 {
		t.Errorf("expected num_blocks_to_rerank 10, got %d", got.NumBlocksToRerank)
	}
	if got.NumBlocks != 3 {
		t.Errorf("expected num_blocks 3, got %d", got.NumBlocks)
	}
}

func TestSearch_PayloadPassedThrough(t *testing.T) {
	body := `{"results": [{"content": "recursion is...", "score": 0.92}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	payload, err := NewClient(srv.URL).Search(context.Background(), "q")
	if err != nil {
		t.Fatal(err)
	}
	if string(payload) != body {
		t.Errorf("expected verbatim payload %q, got %q", body, payload)
	}
}

func TestSearch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), "q")
	if !errors.Is(err, ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed, got %v", err)
	}
}

func TestSearch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient(srv.URL).Search(context.Background(), "q")
	if !errors.Is(err, ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed, got %v", err)
	}
}
