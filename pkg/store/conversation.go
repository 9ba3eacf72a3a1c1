package store

import "ai-proposal-be/pkg/proposal"

// Chat senders
const (
	SenderBot  = "Bot"
	SenderUser = "User"
)

// Conversation phases
const (
	PhaseNew        = "NEW"        // Session created, nothing generated yet
	PhaseDrafted    = "DRAFTED"    // Proposal generated, not tax-related, terminal
	PhaseCollecting = "COLLECTING" // Q&A in progress
	PhaseReview     = "REVIEW"     // All fields answered, user editing details
	PhaseFinalized  = "FINALIZED"  // User confirmed edits, terminal
	PhaseCompleted  = "COMPLETED"  // All fields resolved without any Q&A, terminal
)

// ChatMessage is a single transcript entry. Order of entries is the
// visible chat history.
type ChatMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Conversation is the active proposal-building session state in memory.
// It is created empty, mutated in place by the collection state machine,
// and discarded when the session expires. Nothing is persisted.
type Conversation struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`

	Transcript []ChatMessage `json:"transcript"`

	// AskedFields tracks which registry fields the bot has already asked,
	// keyed by field name rather than question text so two fields sharing
	// wording never suppress each other.
	AskedFields map[string]struct{} `json:"asked_fields"`

	// CollectedDetails maps field name to the answer obtained via Q&A,
	// extractor output, or user edits. Keys are only ever added or
	// overwritten, except for the wholesale replacement on confirm.
	CollectedDetails map[string]string `json:"collected_details"`

	// MissingDetails is the extractor-reported question queue, asked in
	// the order reported.
	MissingDetails []string `json:"missing_details"`

	// PendingField names the field whose question is currently awaiting an
	// answer. Empty outside the COLLECTING phase.
	PendingField    string `json:"pending_field"`
	PendingQuestion string `json:"pending_question"`

	DraftProposal *proposal.ProposalObject `json:"draft_proposal,omitempty"`
	FinalResponse *proposal.ProposalObject `json:"final_response,omitempty"`

	// LastAnalysis holds the extractor output from the confirm-step
	// re-invocation, surfaced alongside the final response.
	LastAnalysis *proposal.AnalysisObject `json:"last_analysis,omitempty"`
}

// NewConversation returns an empty session in the NEW phase.
func NewConversation(id string) *Conversation {
	return &Conversation{
		ID:               id,
		Phase:            PhaseNew,
		Transcript:       []ChatMessage{},
		AskedFields:      make(map[string]struct{}),
		CollectedDetails: make(map[string]string),
	}
}

// LogBotQuestion appends a bot question to the transcript unless the field
// was already asked. Returns true if the message was appended.
func (c *Conversation) LogBotQuestion(field, question string) bool {
	if _, asked := c.AskedFields[field]; asked {
		return false
	}
	c.Transcript = append(c.Transcript, ChatMessage{Sender: SenderBot, Message: question})
	c.AskedFields[field] = struct{}{}
	return true
}

// LogUser appends a user message to the transcript.
func (c *Conversation) LogUser(message string) {
	c.Transcript = append(c.Transcript, ChatMessage{Sender: SenderUser, Message: message})
}

// Terminal reports whether the conversation accepts no further collection
// steps.
func (c *Conversation) Terminal() bool {
	switch c.Phase {
	case PhaseDrafted, PhaseFinalized, PhaseCompleted:
		return true
	}
	return false
}
