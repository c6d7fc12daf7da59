// Package composer turns retrieved context and conversation history into a
// generated answer from the chat-completion service.
package composer

import (
	"context"
	"fmt"
	"strings"

	"lecture-qa/internal/models"

	"github.com/ollama/ollama/api"
)

const systemInstruction = "Respond as if you are a professor for a computer science class being asked a question, use the information provided to answer the question. Do not include a header in your response, answer the question directly."

// Streamer is the streaming chat-completion call the composer generates with
type Streamer interface {
	ChatStream(ctx context.Context, messages []api.Message, emit func(delta string)) error
}

// Composer builds the message sequence for a question and streams the answer
type Composer struct {
	LLM Streamer
}

func NewComposer(llm Streamer) *Composer {
	return &Composer{LLM: llm}
}

// BuildMessages reconstructs multi-turn context for the stateless model: the
// persona instruction, then every prior turn as a user/assistant pair in
// order, then the current question with the retrieved context interpolated
// as text.
func BuildMessages(history []models.ConversationTurn, retrieved *models.RetrievalResult, question string) []api.Message {
	messages := []api.Message{
		{Role: "system", Content: systemInstruction},
	}
	for _, turn := range history {
		messages = append(messages, api.Message{Role: "user", Content: turn.Question})
		messages = append(messages, api.Message{Role: "assistant", Content: turn.Response})
	}
	messages = append(messages, api.Message{
		Role:    "user",
		Content: fmt.Sprintf("Using %s, please explain %s", retrieved.ContextText(), question),
	})
	return messages
}

// Compose obtains the answer to question conditioned on history and the
// retrieved context. Deltas are concatenated in arrival order with no
// separators; emit, if non-nil, additionally receives each delta for live
// display. On error no partial answer is returned.
func (c *Composer) Compose(ctx context.Context, history []models.ConversationTurn, retrieved *models.RetrievalResult, question string, emit func(delta string)) (string, error) {
	messages := BuildMessages(history, retrieved, question)

	var answer strings.Builder
	err := c.LLM.ChatStream(ctx, messages, func(delta string) {
		answer.WriteString(delta)
		if emit != nil {
			emit(delta)
		}
	})
	if err != nil {
		return "", err
	}

	return answer.String(), nil
}
