package providers

import (
	"context"
	"fmt"
)

// Request contains the prompts sent to an LLM.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// Response contains the raw text returned by an LLM.
type Response struct {
	Content    string
	TokensUsed int
}

// Generator is the provider abstraction interface.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model string) (Generator, error) {
	switch provider {
	case "openai":
		return NewOpenAI(model)
	case "anthropic":
		return NewAnthropic(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
