package services

import (
	"context"
	"fmt"
	"net/http"

	"alfredoptarigan/cv-enhancer/internal/config"
)

// TextGenerator sends a prompt to an external text-generation service and
// returns the generated text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExternalServiceError reports a failed completion call. The message is the
// underlying cause's message, unchanged.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return e.Err.Error()
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewTextGenerator builds the provider selected by cfg.Provider.
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig) (TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		// No client timeout: the call is bounded by the transport and the remote service.
		return NewOpenAIService(cfg, &http.Client{}), nil
	case config.ProviderGemini:
		return NewGeminiService(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
