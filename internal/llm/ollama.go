package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// OllamaChat handles chat completions against the Ollama API
type OllamaChat struct {
	Client *api.Client
	Model  string
}

// NewOllamaChat creates a new Ollama chat client. An empty host falls back to
// the OLLAMA_HOST environment variable.
func NewOllamaChat(host string, model string) (*OllamaChat, error) {
	hostURL := envconfig.Host()
	if host != "" {
		parsed, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
		}
		hostURL = parsed
	}
	client := api.NewClient(hostURL, http.DefaultClient)

	return &OllamaChat{
		Client: client,
		Model:  model,
	}, nil
}

// Chat sends a message sequence and returns the full completion text
func (o *OllamaChat) Chat(ctx context.Context, messages []api.Message) (string, error) {
	var responseBuilder strings.Builder
	stream := false

	req := api.ChatRequest{
		Model:    o.Model,
		Messages: messages,
		Stream:   &stream,
	}

	err := o.Client.Chat(ctx, &req, func(resp api.ChatResponse) error {
		_, err := responseBuilder.WriteString(resp.Message.Content)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	return responseBuilder.String(), nil
}

// ChatStream sends a message sequence and delivers completion deltas to emit
// in arrival order. The concatenation of all deltas is the full answer.
func (o *OllamaChat) ChatStream(ctx context.Context, messages []api.Message, emit func(delta string)) error {
	stream := true

	req := api.ChatRequest{
		Model:    o.Model,
		Messages: messages,
		Stream:   &stream,
	}

	err := o.Client.Chat(ctx, &req, func(resp api.ChatResponse) error {
		emit(resp.Message.Content)
		return nil
	})
	if err != nil {
		return fmt.Errorf("streaming chat completion failed: %w", err)
	}

	return nil
}
