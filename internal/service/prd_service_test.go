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
	"pocket-pm-be/pkg/llm"
	"pocket-pm-be/pkg/prdgen"
)

// stubProvider is a canned llm.LLMProvider for generator-backed services.
type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func newPrdServiceForTest(provider llm.LLMProvider) IPrdService {
	factory := memory.NewRepositoryFactory(memory.NewStore())
	generator := prdgen.NewGenerator(provider, logger.NewNopLogger())
	return NewPrdService(factory, generator)
}

func TestPrdGenerateReturnsSections(t *testing.T) {
	ctx := context.Background()
	svc := newPrdServiceForTest(&stubProvider{
		response: `{"sections":[{"title":"Overview","content":"x","order":0},{"title":"Scope","content":"y","order":1}]}`,
	})

	res, err := svc.Generate(ctx, &dto.GeneratePrdRequest{Description: "A todo app"})
	assert.NoError(t, err)
	assert.False(t, res.UsedFallback)
	assert.Len(t, res.Sections, 2)
	assert.Equal(t, "Overview", res.Sections[0].Title)
}

func TestPrdGenerateUpstreamFailureUsesFallback(t *testing.T) {
	ctx := context.Background()
	svc := newPrdServiceForTest(&stubProvider{err: errors.New("unreachable")})

	res, err := svc.Generate(ctx, &dto.GeneratePrdRequest{Description: "A todo app"})
	assert.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.Len(t, res.Sections, len(prdgen.FallbackSections()))
}

func TestPrdCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newPrdServiceForTest(&stubProvider{})
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreatePrdRequest{
		Name:        "Todo App PRD",
		Description: "A todo app",
		Sections: []dto.PrdSectionPayload{
			{Title: "Overview", Content: "x", Order: 0},
			{Title: "Scope", Content: "y", Order: 1},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.Id)

	fetched, err := svc.Get(ctx, userId, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Todo App PRD", fetched.Name)
	assert.Len(t, fetched.Sections, 2)
	assert.Equal(t, "Scope", fetched.Sections[1].Title)
}

func TestPrdGetUnknownIdReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newPrdServiceForTest(&stubProvider{})

	_, err := svc.Get(ctx, uuid.New(), 42)
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestPrdGetScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc := newPrdServiceForTest(&stubProvider{})
	alice := uuid.New()

	created, err := svc.Create(ctx, alice, &dto.CreatePrdRequest{
		Name:        "Private",
		Description: "d",
		Sections:    []dto.PrdSectionPayload{{Title: "Overview"}},
	})
	assert.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New(), created.Id)
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestPrdListReturnsCreationOrder(t *testing.T) {
	ctx := context.Background()
	svc := newPrdServiceForTest(&stubProvider{})
	userId := uuid.New()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, userId, &dto.CreatePrdRequest{
			Name:        name,
			Description: "d",
			Sections:    []dto.PrdSectionPayload{{Title: "Overview"}},
		})
		assert.NoError(t, err)
	}

	prds, err := svc.List(ctx, userId)
	assert.NoError(t, err)
	assert.Len(t, prds, 3)
	assert.Equal(t, "first", prds[0].Name)
	assert.Equal(t, "third", prds[2].Name)
}
