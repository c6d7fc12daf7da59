// Package retrieval dispatches a question to one of two retrieval branches:
// a local transcript filter for lecture/timestamp questions, or the remote
// semantic search service for everything else.
package retrieval

import (
	"context"
	"encoding/json"

	"lecture-qa/internal/models"
)

// IntentParser classifies a question's timestamp intent; nil means none
type IntentParser interface {
	Parse(ctx context.Context, question string) *models.TimestampIntent
}

// TranscriptFilter returns the corpus blocks of a lecture overlapping a
// time range
type TranscriptFilter interface {
	Filter(lecture, start, end int) ([]models.TranscriptBlock, error)
}

// Searcher queries the remote semantic search service
type Searcher interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// Router routes a question through exactly one retrieval branch
type Router struct {
	Intent IntentParser
	Corpus TranscriptFilter
	Search Searcher
}

func NewRouter(intent IntentParser, corpus TranscriptFilter, search Searcher) *Router {
	return &Router{Intent: intent, Corpus: corpus, Search: search}
}

// Route retrieves context for question. The intent parser runs on the
// current question alone; on a match the transcript filter's result is
// terminal, even when it holds zero blocks. Only questions with no
// timestamp intent reach semantic search, which receives the compiled
// history-plus-question query. Once a branch is chosen there is no retry
// or fallback across branches.
func (r *Router) Route(ctx context.Context, compiled, question string) (*models.RetrievalResult, error) {
	if intent := r.Intent.Parse(ctx, question); intent != nil {
		blocks, err := r.Corpus.Filter(intent.Lecture, intent.Start, intent.End)
		if err != nil {
			return nil, err
		}
		return &models.RetrievalResult{Source: models.SourceTranscript, Blocks: blocks}, nil
	}

	payload, err := r.Search.Search(ctx, compiled)
	if err != nil {
		return nil, err
	}
	return &models.RetrievalResult{Source: models.SourceSearch, Payload: payload}, nil
}
