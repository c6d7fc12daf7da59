package models

import (
	"encoding/json"
	"fmt"
)

// TranscriptBlock represents one unit of lecture content from the corpus
type TranscriptBlock struct {
	DocumentTitle string        `json:"document_title"`
	BlockMetadata BlockMetadata `json:"block_metadata"`
	Content       string        `json:"content"`
}

// BlockMetadata contains the time range of a transcript block
type BlockMetadata struct {
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

// TimestampIntent is the parsed lecture/time-range reference of a question.
// A nil *TimestampIntent means the question carries no timestamp reference.
type TimestampIntent struct {
	Lecture int `json:"lecture"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

// ConversationTurn represents one question/response exchange
type ConversationTurn struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// RetrievalSource identifies which retrieval branch produced a result
type RetrievalSource string

const (
	SourceTranscript RetrievalSource = "transcript"
	SourceSearch     RetrievalSource = "search"
)

// RetrievalResult holds retrieved context from either retrieval branch:
// transcript blocks from the timestamp path, or the ranked payload from the
// semantic search service passed through verbatim.
type RetrievalResult struct {
	Source  RetrievalSource   `json:"source"`
	Blocks  []TranscriptBlock `json:"blocks,omitempty"`
	Payload json.RawMessage   `json:"payload,omitempty"`
}

// Empty reports whether the result carries no retrieved content. An empty
// transcript result is still a successful retrieval.
func (r *RetrievalResult) Empty() bool {
	return len(r.Blocks) == 0 && len(r.Payload) == 0
}

// ContextText renders the retrieved content as text for prompt interpolation,
// whichever branch it came from.
func (r *RetrievalResult) ContextText() string {
	if r.Source == SourceSearch {
		return string(r.Payload)
	}
	data, err := json.Marshal(r.Blocks)
	if err != nil {
		return fmt.Sprintf("%v", r.Blocks)
	}
	return string(data)
}
