// Package generate wraps the single model call that turns free-text
// business requirements into a structured draft proposal.
package generate

import (
	"context"
	"errors"

	"ai-proposal-be/internal/constant"
	"ai-proposal-be/internal/pkg/logger"
	"ai-proposal-be/pkg/ai/parser"
	"ai-proposal-be/pkg/llm"
	"ai-proposal-be/pkg/proposal"
)

// Generator creates a tailored financial proposal from user requirements
type Generator struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Generate performs one request/response round trip. No retry, no
// fallback: any failure maps to the uniform error taxonomy and is
// surfaced to the caller as a value.
func (g *Generator) Generate(ctx context.Context, userInput string) (*proposal.ProposalObject, error) {
	prompt := constant.ProposalPromptV1 + "\nUser Input: " + userInput

	reply, err := g.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0),
		llm.WithMaxTokens(2000),
	)
	if err != nil {
		g.logger.Error("ProposalGenerator", "Model call failed", map[string]interface{}{"error": err.Error()})
		if errors.Is(err, parser.ErrEmptyResponse) {
			return nil, err
		}
		return nil, parser.Exception(err)
	}

	var draft proposal.ProposalObject
	if err := parser.ExtractObject(reply, &draft); err != nil {
		g.logger.Error("ProposalGenerator", "Reply parsing failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	g.logger.Info("ProposalGenerator", "Draft proposal generated", map[string]interface{}{
		"services": len(draft.RequiredServices),
	})
	return &draft, nil
}
