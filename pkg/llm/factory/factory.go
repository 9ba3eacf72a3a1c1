package factory

import (
	"ai-proposal-be/internal/config"
	"ai-proposal-be/pkg/llm"
	"ai-proposal-be/pkg/llm/bedrock"
	"ai-proposal-be/pkg/llm/ollama"
	"context"
	"fmt"
)

func NewLLMProvider(ctx context.Context, cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.LLMProvider {
	case "bedrock":
		return bedrock.NewBedrockProvider(ctx, cfg.BedrockModelID, cfg.AnthropicVersion, cfg.AWSRegion)
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
