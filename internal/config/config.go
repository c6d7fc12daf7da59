package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultCorpusFile = "lectures.jsonl"
	DefaultSearchURL  = "https://search.genie.stanford.edu/stanford_computer_science_106B"
	DefaultChatModel  = "llama3.1:8b"
)

type Config struct {
	CorpusPath  string `toml:"corpus_path"`
	SearchURL   string `toml:"search_url"`
	ChatModel   string `toml:"chat_model"`
	IntentModel string `toml:"intent_model"`
	OllamaHost  string `toml:"ollama_host"`
}

// Load returns the config with defaults filled in, overridden by
// ~/.config/lectureqa/config.toml if it exists.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CorpusPath:  DefaultCorpusFile,
		SearchURL:   DefaultSearchURL,
		ChatModel:   DefaultChatModel,
		IntentModel: DefaultChatModel,
	}

	cfgPath := filepath.Join(home, ".config", "lectureqa", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.CorpusPath = expandHome(cfg.CorpusPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
