package service

import (
	"context"
	"encoding/json"
	"sync"

	"ai-proposal-be/internal/dto"
	"ai-proposal-be/internal/pkg/logger"
	"ai-proposal-be/internal/repository/memory"
	"ai-proposal-be/internal/websocket"
	"ai-proposal-be/pkg/proposal/analyze"
	"ai-proposal-be/pkg/proposal/collect"
	"ai-proposal-be/pkg/proposal/generate"
	"ai-proposal-be/pkg/proposal/relevance"
	"ai-proposal-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IProposalService defines the proposal-building conversation interface
type IProposalService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	Generate(ctx context.Context, sessionId uuid.UUID, request *dto.GenerateProposalRequest) (*dto.ConversationResponse, error)
	SubmitAnswer(ctx context.Context, sessionId uuid.UUID, request *dto.SubmitAnswerRequest) (*dto.ConversationResponse, error)
	GetConversation(ctx context.Context, sessionId uuid.UUID) (*dto.ConversationResponse, error)
	GetReviewDetails(ctx context.Context, sessionId uuid.UUID) (map[string]string, error)
	ConfirmDetails(ctx context.Context, sessionId uuid.UUID, request *dto.ConfirmDetailsRequest) (*dto.ConfirmDetailsResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

// proposalService coordinates the generator, analyzer and collection
// state machine around the in-memory conversation store.
type proposalService struct {
	repo      *memory.ConversationRepository
	generator *generate.Generator
	analyzer  *analyze.Analyzer
	machine   *collect.Machine
	hub       *websocket.Hub
	logger    logger.ILogger

	// One lock per session: the machine advances exactly one step per
	// user interaction, so concurrent requests for the same session are
	// serialized rather than interleaved.
	sessionLocks sync.Map
}

func NewProposalService(
	repo *memory.ConversationRepository,
	generator *generate.Generator,
	analyzer *analyze.Analyzer,
	machine *collect.Machine,
	hub *websocket.Hub,
	log logger.ILogger,
) IProposalService {
	return &proposalService{
		repo:      repo,
		generator: generator,
		analyzer:  analyzer,
		machine:   machine,
		hub:       hub,
		logger:    log,
	}
}

func (s *proposalService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	id := uuid.New()
	conv := store.NewConversation(id.String())
	s.repo.Save(conv)

	s.logger.Info("ProposalService", "Session created", map[string]interface{}{"session_id": id.String()})
	return &dto.CreateSessionResponse{Id: id}, nil
}

func (s *proposalService) Generate(ctx context.Context, sessionId uuid.UUID, request *dto.GenerateProposalRequest) (*dto.ConversationResponse, error) {
	conv, unlock, err := s.acquire(sessionId)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if conv.Phase != store.PhaseNew {
		return nil, fiber.NewError(fiber.StatusConflict, "proposal already generated for this session")
	}

	draft, err := s.generator.Generate(ctx, request.Requirements)
	if err != nil {
		// Surfaced as a value; the conversation is untouched.
		view := s.toView(conv)
		view.Error = err.Error()
		return view, nil
	}
	conv.DraftProposal = draft

	if !relevance.IsTaxRelated(request.Requirements) {
		// Nothing to collect: the draft is the final response.
		conv.FinalResponse = draft.Clone()
		conv.Phase = store.PhaseDrafted
		s.repo.Save(conv)
		s.publish(conv)
		return s.toView(conv), nil
	}

	analysis, err := s.analyzer.Analyze(ctx, request.Requirements, draft)
	if err != nil {
		// The draft survives; the analysis step mutated nothing.
		s.repo.Save(conv)
		view := s.toView(conv)
		view.Error = err.Error()
		return view, nil
	}

	for k, v := range analysis.ProvidedDetails {
		conv.CollectedDetails[k] = v
	}
	conv.MissingDetails = analysis.MissingDetails

	s.machine.Advance(conv)
	s.repo.Save(conv)
	s.publish(conv)
	return s.toView(conv), nil
}

func (s *proposalService) SubmitAnswer(ctx context.Context, sessionId uuid.UUID, request *dto.SubmitAnswerRequest) (*dto.ConversationResponse, error) {
	conv, unlock, err := s.acquire(sessionId)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if conv.Phase != store.PhaseCollecting {
		return nil, fiber.NewError(fiber.StatusConflict, "no question is pending for this session")
	}

	if accepted := s.machine.SubmitAnswer(conv, request.Answer); accepted {
		s.repo.Save(conv)
		s.publish(conv)
	}
	// A rejected blank answer changes nothing: same pending question.
	return s.toView(conv), nil
}

func (s *proposalService) GetConversation(ctx context.Context, sessionId uuid.UUID) (*dto.ConversationResponse, error) {
	conv, unlock, err := s.acquire(sessionId)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.toView(conv), nil
}

func (s *proposalService) GetReviewDetails(ctx context.Context, sessionId uuid.UUID) (map[string]string, error) {
	conv, unlock, err := s.acquire(sessionId)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if conv.Phase != store.PhaseReview {
		return nil, fiber.NewError(fiber.StatusConflict, "conversation is not in review")
	}
	return s.machine.ReviewDetails(conv), nil
}

func (s *proposalService) ConfirmDetails(ctx context.Context, sessionId uuid.UUID, request *dto.ConfirmDetailsRequest) (*dto.ConfirmDetailsResponse, error) {
	conv, unlock, err := s.acquire(sessionId)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.machine.Confirm(conv, request.Details); err != nil {
		return nil, fiber.NewError(fiber.StatusConflict, err.Error())
	}
	s.repo.Save(conv)
	s.publish(conv)

	// Refresh the downstream structured outputs with the edited details
	// as input. Failures here surface as values next to the final
	// response; the confirmed state stands either way.
	editedJSON, err := json.Marshal(request.Details)
	if err != nil {
		return nil, err
	}

	response := &dto.ConfirmDetailsResponse{Conversation: s.toView(conv)}

	if refreshed, err := s.generator.Generate(ctx, string(editedJSON)); err != nil {
		response.ProposalError = err.Error()
	} else {
		response.ProposalResponse = refreshed
	}

	if analysis, err := s.analyzer.Analyze(ctx, string(editedJSON), conv.DraftProposal); err != nil {
		response.AnalyzeError = err.Error()
	} else {
		response.AnalyzeResponse = analysis
		conv.LastAnalysis = analysis
		s.repo.Save(conv)
	}

	return response, nil
}

func (s *proposalService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	id := sessionId.String()

	// Delete under the session lock so an in-flight step cannot save the
	// conversation back after it is gone.
	muAny, _ := s.sessionLocks.LoadOrStore(id, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	s.repo.Delete(id)
	mu.Unlock()
	s.sessionLocks.Delete(id)

	s.logger.Info("ProposalService", "Session deleted", map[string]interface{}{"session_id": id})
	return nil
}

// acquire loads the conversation and takes its per-session lock.
func (s *proposalService) acquire(sessionId uuid.UUID) (*store.Conversation, func(), error) {
	id := sessionId.String()
	muAny, _ := s.sessionLocks.LoadOrStore(id, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()

	conv, found := s.repo.Get(id)
	if !found {
		mu.Unlock()
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	return conv, mu.Unlock, nil
}

func (s *proposalService) toView(conv *store.Conversation) *dto.ConversationResponse {
	transcript := make([]dto.ChatMessageDTO, len(conv.Transcript))
	for i, msg := range conv.Transcript {
		transcript[i] = dto.ChatMessageDTO{Sender: msg.Sender, Message: msg.Message}
	}

	view := &dto.ConversationResponse{
		Id:              conv.ID,
		Phase:           conv.Phase,
		Transcript:      transcript,
		PendingField:    conv.PendingField,
		PendingQuestion: conv.PendingQuestion,
		DraftProposal:   conv.DraftProposal,
		FinalResponse:   conv.FinalResponse,
	}
	if conv.Phase == store.PhaseReview {
		view.ReviewDetails = s.machine.ReviewDetails(conv)
	}
	return view
}

func (s *proposalService) publish(conv *store.Conversation) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToSession(conv.ID, websocket.Event{
		Type:    "update",
		Session: conv.ID,
		Payload: s.toView(conv),
	})
}
