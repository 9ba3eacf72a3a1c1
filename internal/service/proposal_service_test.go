package service

import (
	"context"
	"sync"
	"testing"

	"ai-proposal-be/internal/dto"
	"ai-proposal-be/internal/repository/memory"
	"ai-proposal-be/pkg/llm"
	"ai-proposal-be/pkg/proposal/analyze"
	"ai-proposal-be/pkg/proposal/collect"
	"ai-proposal-be/pkg/proposal/generate"
	"ai-proposal-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// scriptedProvider replays one canned reply per model call, in order.
type scriptedProvider struct {
	replies []string
	calls   int
}

func (s *scriptedProvider) next() (string, error) {
	if s.calls >= len(s.replies) {
		return "", nil // maps to the empty-response error downstream
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

func (s *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.next()
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.next()
}

const draftReply = `{"Proposal Description":"Tax filing support","Required Services":["Tax Filing"]}`

func newService(provider llm.LLMProvider) (IProposalService, *memory.ConversationRepository) {
	log := nopLogger{}
	repo := memory.NewConversationRepository()
	svc := NewProposalService(
		repo,
		generate.NewGenerator(provider, log),
		analyze.NewAnalyzer(provider, log),
		collect.NewMachine(log),
		nil, // no hub in unit tests
		log,
	)
	return svc, repo
}

func createSession(t *testing.T, svc IProposalService) uuid.UUID {
	t.Helper()
	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	return created.Id
}

func TestGenerateNotTaxRelated(t *testing.T) {
	provider := &scriptedProvider{replies: []string{draftReply}}
	svc, _ := newService(provider)
	id := createSession(t, svc)

	view, err := svc.Generate(context.Background(), id, &dto.GenerateProposalRequest{
		Requirements: "We need help with payroll only",
	})
	require.NoError(t, err)

	assert.Equal(t, store.PhaseDrafted, view.Phase)
	assert.NotNil(t, view.DraftProposal)
	assert.NotNil(t, view.FinalResponse)
	assert.Empty(t, view.PendingQuestion)
	// The analyzer must not run for a non-tax lead.
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateTaxRelatedFullFlow(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		draftReply,
		`{"provided_details":{},"missing_details":["Industry","Annual Revenue"]}`,
		draftReply, // confirm: generator re-invocation
		`{"provided_details":{"Industry":"Consulting","Annual Revenue":"$500k"},"missing_details":[]}`,
	}}
	svc, _ := newService(provider)
	id := createSession(t, svc)
	ctx := context.Background()

	view, err := svc.Generate(ctx, id, &dto.GenerateProposalRequest{
		Requirements: "We need tax filing for the last two years",
	})
	require.NoError(t, err)
	assert.Equal(t, store.PhaseCollecting, view.Phase)
	assert.Equal(t, "Industry", view.PendingField)

	view, err = svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{Answer: "Consulting"})
	require.NoError(t, err)
	assert.Equal(t, "Annual Revenue", view.PendingField)

	view, err = svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{Answer: "$500k"})
	require.NoError(t, err)
	assert.Equal(t, store.PhaseReview, view.Phase)
	assert.Len(t, view.Transcript, 4)
	assert.Equal(t, map[string]string{
		"Annual Revenue": "$500k",
		"Industry":       "Consulting",
	}, view.ReviewDetails)

	details, err := svc.GetReviewDetails(ctx, id)
	require.NoError(t, err)
	details["Industry"] = "Restaurants"

	result, err := svc.ConfirmDetails(ctx, id, &dto.ConfirmDetailsRequest{Details: details})
	require.NoError(t, err)
	assert.Equal(t, store.PhaseFinalized, result.Conversation.Phase)
	assert.NotNil(t, result.Conversation.FinalResponse)
	assert.NotNil(t, result.ProposalResponse)
	assert.NotNil(t, result.AnalyzeResponse)
	assert.Empty(t, result.ProposalError)
	assert.Empty(t, result.AnalyzeError)
}

func TestGenerateModelFailureLeavesSessionUntouched(t *testing.T) {
	provider := &scriptedProvider{replies: nil} // every call yields an empty reply
	svc, repo := newService(provider)
	id := createSession(t, svc)

	view, err := svc.Generate(context.Background(), id, &dto.GenerateProposalRequest{
		Requirements: "tax filing please",
	})
	require.NoError(t, err)
	assert.Equal(t, "Empty response from the model", view.Error)
	assert.Equal(t, store.PhaseNew, view.Phase)
	assert.Nil(t, view.DraftProposal)

	// The stored conversation did not move either, so a retry is allowed.
	conv, found := repo.Get(id.String())
	require.True(t, found)
	assert.Equal(t, store.PhaseNew, conv.Phase)

	provider.replies = []string{draftReply, `{"provided_details":{},"missing_details":["Industry"]}`}
	provider.calls = 0
	view, err = svc.Generate(context.Background(), id, &dto.GenerateProposalRequest{
		Requirements: "tax filing please",
	})
	require.NoError(t, err)
	assert.Empty(t, view.Error)
	assert.Equal(t, store.PhaseCollecting, view.Phase)
}

func TestAnalyzeFailureKeepsDraft(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		draftReply,
		"no structured output here",
	}}
	svc, repo := newService(provider)
	id := createSession(t, svc)

	view, err := svc.Generate(context.Background(), id, &dto.GenerateProposalRequest{
		Requirements: "tax filing please",
	})
	require.NoError(t, err)
	assert.Equal(t, "No JSON object found in model response", view.Error)
	assert.NotNil(t, view.DraftProposal)
	assert.Equal(t, store.PhaseNew, view.Phase)

	conv, found := repo.Get(id.String())
	require.True(t, found)
	assert.NotNil(t, conv.DraftProposal)
}

func TestBlankAnswerKeepsQuestionPending(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		draftReply,
		`{"provided_details":{},"missing_details":["Industry"]}`,
	}}
	svc, _ := newService(provider)
	id := createSession(t, svc)
	ctx := context.Background()

	_, err := svc.Generate(ctx, id, &dto.GenerateProposalRequest{Requirements: "tax filing"})
	require.NoError(t, err)

	view, err := svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{Answer: "   "})
	require.NoError(t, err)
	assert.Equal(t, store.PhaseCollecting, view.Phase)
	assert.Equal(t, "Industry", view.PendingField)
	assert.Len(t, view.Transcript, 1)
}

func TestGenerateTwiceConflicts(t *testing.T) {
	provider := &scriptedProvider{replies: []string{draftReply}}
	svc, _ := newService(provider)
	id := createSession(t, svc)
	ctx := context.Background()

	_, err := svc.Generate(ctx, id, &dto.GenerateProposalRequest{Requirements: "payroll"})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, id, &dto.GenerateProposalRequest{Requirements: "payroll"})
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newService(&scriptedProvider{})

	_, err := svc.GetConversation(context.Background(), uuid.New())
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestDeleteDuringSubmitAnswerNeverResurrects(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		draftReply,
		`{"provided_details":{},"missing_details":["Industry"]}`,
	}}
	svc, repo := newService(provider)
	id := createSession(t, svc)
	ctx := context.Background()

	_, err := svc.Generate(ctx, id, &dto.GenerateProposalRequest{Requirements: "tax filing"})
	require.NoError(t, err)

	// Whichever order the two operations serialize in, the answer step's
	// save must never put the conversation back after the delete.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		svc.SubmitAnswer(ctx, id, &dto.SubmitAnswerRequest{Answer: "Consulting"})
	}()
	go func() {
		defer wg.Done()
		svc.DeleteSession(ctx, id)
	}()
	wg.Wait()

	_, found := repo.Get(id.String())
	assert.False(t, found)
}

func TestDeleteSession(t *testing.T) {
	svc, _ := newService(&scriptedProvider{})
	id := createSession(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.DeleteSession(ctx, id))

	_, err := svc.GetConversation(ctx, id)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}
