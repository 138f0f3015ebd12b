package services

import (
	"context"
	"log"
)

type EnhancerService interface {
	EnhanceCV(ctx context.Context, jobDescription, cv string) (string, error)
}

type enhancerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewEnhancerService(generator TextGenerator) EnhancerService {
	return &enhancerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// EnhanceCV composes the enhancement prompt and returns the generated HTML unaltered.
// Any generator failure is returned as *ExternalServiceError.
func (e *enhancerService) EnhanceCV(ctx context.Context, jobDescription, cv string) (string, error) {
	prompt := e.promptBuilder.BuildCVEnhancementPrompt(jobDescription, cv)
	log.Printf("📝 CV enhancement prompt length: %d characters", len(prompt))

	enhanced, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("❌ CV enhancement failed: %v", err)
		return "", &ExternalServiceError{Err: err}
	}

	log.Printf("✅ CV enhancement response received: %d characters", len(enhanced))
	return enhanced, nil
}
