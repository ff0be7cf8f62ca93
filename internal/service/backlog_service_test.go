package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/pkg/logger"
	"pocket-pm-be/internal/repository/memory"
	"pocket-pm-be/pkg/backloggen"
	"pocket-pm-be/pkg/llm"
	"pocket-pm-be/pkg/prdgen"
)

// recordingProvider captures the prompt forwarded to the backend.
type recordingProvider struct {
	stubProvider
	lastPrompt string
}

func (r *recordingProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		r.lastPrompt = history[len(history)-1].Content
	}
	return r.response, r.err
}

func newBacklogServiceForTest(provider llm.LLMProvider) (IBacklogService, IFeatureService, IPrdService) {
	factory := memory.NewRepositoryFactory(memory.NewStore())
	nop := logger.NewNopLogger()
	featureService := NewFeatureService(factory)
	prdService := NewPrdService(factory, prdgen.NewGenerator(provider, nop))
	backlogService := NewBacklogService(factory, backloggen.NewGenerator(provider, nop), featureService, nop)
	return backlogService, featureService, prdService
}

func TestBacklogGenerateFromDescription(t *testing.T) {
	ctx := context.Background()
	svc, featureService, _ := newBacklogServiceForTest(&stubProvider{
		response: `{"features":[
			{"title":"Login","description":"d","reach":9,"impact":8,"confidence":9,"effort":6},
			{"title":"Search","description":"d","reach":6,"impact":7,"confidence":5,"effort":4}
		]}`,
	})
	userId := uuid.New()

	res, err := svc.Generate(ctx, userId, &dto.GenerateBacklogRequest{Description: "A team chat app"})
	assert.NoError(t, err)
	assert.False(t, res.UsedFallback)
	assert.Equal(t, 2, res.CreatedCount)
	assert.Equal(t, "Backlog items generated successfully", res.Message)

	features, err := featureService.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 2)
	assert.Equal(t, "Login", features[0].Title)
	assert.Equal(t, 108.0, features[0].Score)
	assert.Equal(t, 0, features[0].Order)
	assert.Equal(t, 1, features[1].Order)
}

func TestBacklogGenerateRequiresSource(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newBacklogServiceForTest(&stubProvider{})

	_, err := svc.Generate(ctx, uuid.New(), &dto.GenerateBacklogRequest{})
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)

	_, err = svc.Generate(ctx, uuid.New(), &dto.GenerateBacklogRequest{Description: "   "})
	appErr, ok = apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
}

func TestBacklogGenerateUnknownPrdReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newBacklogServiceForTest(&stubProvider{})

	prdId := 42
	_, err := svc.Generate(ctx, uuid.New(), &dto.GenerateBacklogRequest{PrdId: &prdId})
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestBacklogGenerateFlattensPrd(t *testing.T) {
	ctx := context.Background()
	provider := &recordingProvider{stubProvider: stubProvider{
		response: `{"features":[{"title":"Login","description":"d","reach":5,"impact":5,"confidence":5,"effort":5}]}`,
	}}
	svc, _, prdService := newBacklogServiceForTest(provider)
	userId := uuid.New()

	created, err := prdService.Create(ctx, userId, &dto.CreatePrdRequest{
		Name:        "Chat PRD",
		Description: "A team chat app",
		Sections: []dto.PrdSectionPayload{
			{Title: "Overview", Content: "Chat for teams.", Order: 0},
			{Title: "Scope", Content: "Messaging only.", Order: 1},
		},
	})
	assert.NoError(t, err)

	_, err = svc.Generate(ctx, userId, &dto.GenerateBacklogRequest{PrdId: &created.Id})
	assert.NoError(t, err)

	assert.Contains(t, provider.lastPrompt, "A team chat app\n\nOverview:\nChat for teams.\n\nScope:\nMessaging only.")
}

func TestBacklogGenerateUpstreamFailureCreatesFallbackDraft(t *testing.T) {
	ctx := context.Background()
	svc, featureService, _ := newBacklogServiceForTest(&stubProvider{err: errors.New("timeout")})
	userId := uuid.New()

	res, err := svc.Generate(ctx, userId, &dto.GenerateBacklogRequest{Description: "anything"})
	assert.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.Equal(t, 1, res.CreatedCount)

	features, err := featureService.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 1)
	assert.Equal(t, "Basic Feature", features[0].Title)
	assert.Equal(t, 25.0, features[0].Score)
}

func TestBacklogGenerateSkipsOutOfRangeDrafts(t *testing.T) {
	ctx := context.Background()
	svc, featureService, _ := newBacklogServiceForTest(&stubProvider{
		response: `{"features":[
			{"title":"Good","description":"d","reach":5,"impact":5,"confidence":5,"effort":5},
			{"title":"Bad","description":"d","reach":15,"impact":5,"confidence":5,"effort":5}
		]}`,
	})
	userId := uuid.New()

	res, err := svc.Generate(ctx, userId, &dto.GenerateBacklogRequest{Description: "anything"})
	assert.NoError(t, err)
	assert.Equal(t, 1, res.CreatedCount)

	features, err := featureService.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, features, 1)
	assert.Equal(t, "Good", features[0].Title)
}
