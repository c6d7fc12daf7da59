package main

import (
	"context"
	"errors"
	"fmt"

	"lecture-qa/internal/composer"
	"lecture-qa/internal/config"
	"lecture-qa/internal/conversation"
	"lecture-qa/internal/corpus"
	"lecture-qa/internal/intent"
	"lecture-qa/internal/llm"
	"lecture-qa/internal/retrieval"
	"lecture-qa/internal/search"
)

// pipelineFlags are the config overrides shared by the question commands
type pipelineFlags struct {
	corpusPath string
	searchURL  string
	chatModel  string
	ollamaHost string
}

type pipeline struct {
	router   *retrieval.Router
	composer *composer.Composer
}

func newPipeline(flags pipelineFlags) (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.corpusPath != "" {
		cfg.CorpusPath = flags.corpusPath
	}
	if flags.searchURL != "" {
		cfg.SearchURL = flags.searchURL
	}
	if flags.chatModel != "" {
		cfg.ChatModel = flags.chatModel
		cfg.IntentModel = flags.chatModel
	}
	if flags.ollamaHost != "" {
		cfg.OllamaHost = flags.ollamaHost
	}

	chatLLM, err := llm.NewOllamaChat(cfg.OllamaHost, cfg.ChatModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}
	intentLLM, err := llm.NewOllamaChat(cfg.OllamaHost, cfg.IntentModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create intent client: %w", err)
	}

	router := retrieval.NewRouter(
		intent.NewParser(intentLLM),
		corpus.NewStore(cfg.CorpusPath),
		search.NewClient(cfg.SearchURL),
	)

	return &pipeline{
		router:   router,
		composer: composer.NewComposer(chatLLM),
	}, nil
}

var errNoResult = errors.New("no usable retrieval result")

// answer runs one question through retrieval and composition. The turn is
// appended to history only after the answer has fully streamed; any failure,
// including an empty retrieval result, leaves history unchanged.
func (p *pipeline) answer(ctx context.Context, hist *conversation.History, question string, emit func(delta string)) (string, error) {
	compiled := hist.CompiledInput(question)

	result, err := p.router.Route(ctx, compiled, question)
	if err != nil {
		return "", err
	}
	if result.Empty() {
		return "", errNoResult
	}

	response, err := p.composer.Compose(ctx, hist.Turns, result, question, emit)
	if err != nil {
		return "", err
	}

	hist.Append(question, response)
	return response, nil
}
