// Package analyze wraps the extraction model call: which required lead
// details the user already provided, and which still have to be asked.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-proposal-be/internal/constant"
	"ai-proposal-be/internal/pkg/logger"
	"ai-proposal-be/pkg/ai/parser"
	"ai-proposal-be/pkg/llm"
	"ai-proposal-be/pkg/proposal"
	"ai-proposal-be/pkg/proposal/registry"
)

type Analyzer struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewAnalyzer(llmProvider llm.LLMProvider, log logger.ILogger) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Analyze extracts provided details and the list of still-missing required
// fields from the user input plus the draft proposal.
func (a *Analyzer) Analyze(ctx context.Context, userInput string, draft *proposal.ProposalObject) (*proposal.AnalysisObject, error) {
	requiredJSON, err := json.Marshal(registry.FieldNames())
	if err != nil {
		return nil, parser.Exception(err)
	}
	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return nil, parser.Exception(err)
	}

	prompt := fmt.Sprintf(constant.AnalyzeDetailsPromptV1, requiredJSON, userInput, draftJSON)

	reply, err := a.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0),
		llm.WithMaxTokens(1000),
	)
	if err != nil {
		a.logger.Error("DetailAnalyzer", "Model call failed", map[string]interface{}{"error": err.Error()})
		if errors.Is(err, parser.ErrEmptyResponse) {
			return nil, err
		}
		return nil, parser.Exception(err)
	}

	var analysis proposal.AnalysisObject
	if err := parser.ExtractObject(reply, &analysis); err != nil {
		a.logger.Error("DetailAnalyzer", "Reply parsing failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if analysis.ProvidedDetails == nil {
		analysis.ProvidedDetails = map[string]string{}
	}
	analysis.MissingDetails = NormalizeMissing(analysis.MissingDetails)

	a.logger.Info("DetailAnalyzer", "Analysis complete", map[string]interface{}{
		"provided": len(analysis.ProvidedDetails),
		"missing":  len(analysis.MissingDetails),
	})
	return &analysis, nil
}

// NormalizeMissing collapses duplicate names out of the extractor's
// missing-field list. The model's order is kept: it is the order the
// questions get asked in.
func NormalizeMissing(missing []string) []string {
	if len(missing) == 0 {
		return missing
	}
	seen := make(map[string]struct{}, len(missing))
	out := make([]string, 0, len(missing))
	for _, name := range missing {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
