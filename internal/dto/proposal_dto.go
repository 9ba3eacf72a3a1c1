package dto

import (
	"ai-proposal-be/pkg/proposal"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GenerateProposalRequest struct {
	Requirements string `json:"requirements" validate:"required"`
}

// SubmitAnswerRequest carries one answer to the pending question. A blank
// answer is legal input: it is rejected silently and the question stays
// pending, so no required tag here.
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type ConfirmDetailsRequest struct {
	Details map[string]string `json:"details" validate:"required"`
}

type ChatMessageDTO struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// ConversationResponse is the full session view the form renders after
// every interaction.
type ConversationResponse struct {
	Id              string                   `json:"id"`
	Phase           string                   `json:"phase"`
	Transcript      []ChatMessageDTO         `json:"transcript"`
	PendingField    string                   `json:"pending_field,omitempty"`
	PendingQuestion string                   `json:"pending_question,omitempty"`
	DraftProposal   *proposal.ProposalObject `json:"draft_proposal,omitempty"`
	ReviewDetails   map[string]string        `json:"review_details,omitempty"`
	FinalResponse   *proposal.ProposalObject `json:"final_response,omitempty"`

	// Error carries the uniform model-failure message. The step that
	// produced it performed no state mutation.
	Error string `json:"error,omitempty"`
}

// ConfirmDetailsResponse includes the refreshed downstream outputs from
// re-invoking the generator and analyzer on the edited details.
type ConfirmDetailsResponse struct {
	Conversation     *ConversationResponse    `json:"conversation"`
	ProposalResponse *proposal.ProposalObject `json:"proposal_response,omitempty"`
	AnalyzeResponse  *proposal.AnalysisObject `json:"analyze_response,omitempty"`
	ProposalError    string                   `json:"proposal_error,omitempty"`
	AnalyzeError     string                   `json:"analyze_error,omitempty"`
}
