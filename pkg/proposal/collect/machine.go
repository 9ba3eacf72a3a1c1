// Package collect drives the interactive detail-collection conversation:
// which field to ask about next, recording answers, and the transition
// into review and finalization.
package collect

import (
	"fmt"
	"strings"

	"ai-proposal-be/internal/pkg/logger"
	"ai-proposal-be/pkg/proposal/combine"
	"ai-proposal-be/pkg/proposal/registry"
	"ai-proposal-be/pkg/store"
)

// Machine advances a conversation exactly one step per user interaction.
// All side effects are confined to the Conversation; model re-invocation
// on finalize happens in the service layer.
type Machine struct {
	logger logger.ILogger
}

func NewMachine(log logger.ILogger) *Machine {
	return &Machine{logger: log}
}

// Advance re-evaluates the guards and moves the conversation forward:
// asks the next unanswered question, or transitions to REVIEW when every
// missing field has an answer, or to COMPLETED when nothing was ever
// collected.
func (m *Machine) Advance(conv *store.Conversation) {
	unanswered := m.unanswered(conv)

	if len(unanswered) > 0 {
		field := unanswered[0]
		question, ok := registry.Question(field)
		if !ok {
			// Extractor names outside the registry still get asked,
			// with a generic elicitation.
			question = fmt.Sprintf("Could you provide the following detail: %s?", field)
		}
		conv.LogBotQuestion(field, question)
		conv.PendingField = field
		conv.PendingQuestion = question
		conv.Phase = store.PhaseCollecting
		m.logger.Info("CollectMachine", "Asking for field", map[string]interface{}{
			"session": conv.ID, "field": field,
		})
		return
	}

	conv.PendingField = ""
	conv.PendingQuestion = ""
	if len(conv.CollectedDetails) > 0 {
		conv.Phase = store.PhaseReview
		m.logger.Info("CollectMachine", "All fields answered, entering review", map[string]interface{}{
			"session": conv.ID, "collected": len(conv.CollectedDetails),
		})
		return
	}

	// Nothing was ever collected: skip review entirely and finalize from
	// the draft alone.
	conv.FinalResponse = combine.Combine(conv.DraftProposal, conv.CollectedDetails)
	conv.Phase = store.PhaseCompleted
	m.logger.Info("CollectMachine", "Completed without review", map[string]interface{}{
		"session": conv.ID,
	})
}

// SubmitAnswer records the user's answer to the pending question and
// re-advances. A blank answer is rejected silently: no transition, the
// same question stays pending. Returns whether the answer was accepted.
func (m *Machine) SubmitAnswer(conv *store.Conversation, answer string) bool {
	if conv.Phase != store.PhaseCollecting || conv.PendingField == "" {
		return false
	}
	if strings.TrimSpace(answer) == "" {
		return false
	}

	conv.CollectedDetails[conv.PendingField] = answer
	conv.LogUser(answer)
	m.Advance(conv)
	return true
}

// ReviewDetails returns the editable union of the draft's extracted
// details and the collected answers. Collected values win on collision.
func (m *Machine) ReviewDetails(conv *store.Conversation) map[string]string {
	details := make(map[string]string)
	if conv.DraftProposal != nil {
		for k, v := range conv.DraftProposal.ProvidedDetails {
			details[k] = v
		}
	}
	for k, v := range conv.CollectedDetails {
		details[k] = v
	}
	return details
}

// Confirm commits the edited detail set: collected details are replaced
// wholesale, the combiner produces the final response, and the
// conversation becomes terminal.
func (m *Machine) Confirm(conv *store.Conversation, edited map[string]string) error {
	if conv.Phase != store.PhaseReview {
		return fmt.Errorf("conversation is not in review (phase %s)", conv.Phase)
	}

	details := make(map[string]string, len(edited))
	for k, v := range edited {
		details[k] = v
	}
	conv.CollectedDetails = details
	conv.FinalResponse = combine.Combine(conv.DraftProposal, conv.CollectedDetails)
	conv.Phase = store.PhaseFinalized

	m.logger.Info("CollectMachine", "Details confirmed", map[string]interface{}{
		"session": conv.ID, "details": len(details),
	})
	return nil
}

// unanswered is the extractor-reported missing list minus everything
// already collected, in reported order.
func (m *Machine) unanswered(conv *store.Conversation) []string {
	var out []string
	for _, field := range conv.MissingDetails {
		if _, ok := conv.CollectedDetails[field]; !ok {
			out = append(out, field)
		}
	}
	return out
}
