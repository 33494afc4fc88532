package ai

import (
	"fmt"

	"go.uber.org/zap"
)

// Config holds model provider configuration.
type Config struct {
	Provider ProviderType

	GeminiAPIKey string

	OllamaBaseURL string
	OllamaModel   string
}

// NewGenerator creates a Generator based on the config. Switch providers by
// changing config.Provider; "auto" wires both behind the fallback router.
func NewGenerator(cfg Config, log *zap.Logger) (Generator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		ollama := NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel)
		if cfg.GeminiAPIKey == "" {
			return ollama, nil
		}
		return NewFallbackService(NewGeminiService(cfg.GeminiAPIKey), ollama, log), nil
	}
}
