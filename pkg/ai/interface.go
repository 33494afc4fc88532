package ai

import "context"

// Generator is the single-prompt text generation interface. Implement it to
// add new model providers (Gemini, Ollama, OpenAI, etc.).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType selects the model provider.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
