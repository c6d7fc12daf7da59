// Package conversation holds the in-memory history of a single chat session.
package conversation

import (
	"strings"

	"lecture-qa/internal/models"
)

// History is the append-only record of completed exchanges in one session.
// A turn is only appended after its answer has been fully composed, so a
// failed question never appears here.
type History struct {
	Turns []models.ConversationTurn
}

func New() *History {
	return &History{}
}

// Append records a completed question/response exchange
func (h *History) Append(question, response string) {
	h.Turns = append(h.Turns, models.ConversationTurn{
		Question: question,
		Response: response,
	})
}

// CompiledInput joins every prior question with the current one into the
// query string handed to semantic search, preserving conversation order.
func (h *History) CompiledInput(current string) string {
	parts := make([]string, 0, len(h.Turns)+1)
	for _, turn := range h.Turns {
		parts = append(parts, turn.Question)
	}
	parts = append(parts, current)
	return strings.Join(parts, " ")
}
