package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/KevinNatera/l2assessment/internal/config"
	"github.com/KevinNatera/l2assessment/internal/provider"
	"github.com/KevinNatera/l2assessment/internal/service"
	"github.com/KevinNatera/l2assessment/internal/storage"
)

// stateDir returns the configured state directory, creating nothing.
func stateDir() string {
	dir := viper.GetString("state.dir")
	if dir == "" {
		return config.DefaultStateDir()
	}
	return config.ExpandPath(dir)
}

// openStorage opens the history database under the state directory.
func openStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = filepath.Join(stateDir(), "triage.db")
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// createCategorizer builds the configured categorizer, wrapped with retries.
// This function is shared by the commands that run analyses.
func createCategorizer() (provider.Categorizer, error) {
	providerName := viper.GetString("llm.provider")
	if providerName == "" {
		providerName = "anthropic"
	}

	cfg := provider.Config{
		Provider:    providerName,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}

	// Get API key based on provider
	switch providerName {
	case "anthropic":
		apiKey := viper.GetString("llm.anthropic_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("openai API key not found in config or OPENAI_API_KEY environment variable")
		}
		cfg.APIKey = apiKey
	}

	categorizer, err := provider.NewCategorizer(cfg)
	if err != nil {
		return nil, err
	}

	return provider.WithRetry(categorizer, service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Second,
	}), nil
}

// createScorer builds the deterministic urgency scorer.
func createScorer() (provider.UrgencyScorer, error) {
	scorer, err := provider.NewRuleScorer(provider.DefaultUrgencyRules())
	if err != nil {
		return nil, fmt.Errorf("failed to build urgency rules: %w", err)
	}
	return scorer, nil
}

// createTemplater builds the reply templater, with overrides from the
// configured templates file when one is set.
func createTemplater() (provider.ActionTemplater, error) {
	path := viper.GetString("templates.path")
	if path == "" {
		return provider.NewTemplater(), nil
	}

	templater, err := provider.LoadTemplater(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return templater, nil
}
