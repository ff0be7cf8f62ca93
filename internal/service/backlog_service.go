package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/pkg/logger"
	"pocket-pm-be/internal/pkg/serverutils"
	"pocket-pm-be/internal/repository/unitofwork"
	"pocket-pm-be/pkg/backloggen"
)

type IBacklogService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateBacklogRequest) (*dto.GenerateBacklogResponse, error)
}

type backlogService struct {
	uowFactory     unitofwork.RepositoryFactory
	generator      *backloggen.Generator
	featureService IFeatureService
	logger         logger.ILogger
}

func NewBacklogService(
	uowFactory unitofwork.RepositoryFactory,
	generator *backloggen.Generator,
	featureService IFeatureService,
	log logger.ILogger,
) IBacklogService {
	return &backlogService{
		uowFactory:     uowFactory,
		generator:      generator,
		featureService: featureService,
		logger:         log,
	}
}

func (s *backlogService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateBacklogRequest) (*dto.GenerateBacklogResponse, error) {
	sourceText, err := s.resolveSourceText(ctx, userId, req)
	if err != nil {
		return nil, err
	}

	drafts, usedFallback := s.generator.Generate(ctx, sourceText)

	// Drafts are created one at a time; a draft failing range validation is
	// skipped, the ones created before and after it stay.
	created := 0
	for i, draft := range drafts {
		createReq := &dto.CreateFeatureRequest{
			Title:       draft.Title,
			Description: draft.Description,
			Reach:       draft.Reach,
			Impact:      draft.Impact,
			Confidence:  draft.Confidence,
			Effort:      draft.Effort,
		}
		if err := serverutils.ValidateRequest(createReq); err != nil {
			s.logger.Warn("backlog", "skipping generated draft failing validation", map[string]interface{}{
				"index": i,
				"title": draft.Title,
				"error": err.Error(),
			})
			continue
		}
		if _, err := s.featureService.Create(ctx, userId, createReq); err != nil {
			return nil, err
		}
		created++
	}

	return &dto.GenerateBacklogResponse{
		Message:      "Backlog items generated successfully",
		CreatedCount: created,
		UsedFallback: usedFallback,
	}, nil
}

func (s *backlogService) resolveSourceText(ctx context.Context, userId uuid.UUID, req *dto.GenerateBacklogRequest) (string, error) {
	if req.PrdId == nil && strings.TrimSpace(req.Description) == "" {
		return "", apperrors.NewValidation("either prd_id or description is required")
	}

	if req.PrdId == nil {
		return req.Description, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	prd, err := uow.PrdRepository().FindById(ctx, userId, *req.PrdId)
	if err != nil {
		return "", err
	}
	if prd == nil {
		return "", apperrors.NewNotFound("prd")
	}

	// Flatten the PRD: description followed by each section as
	// "{title}:\n{content}", blank-line separated, in stored section order.
	blocks := make([]string, 0, len(prd.Sections)+1)
	blocks = append(blocks, prd.Description)
	for _, sec := range prd.Sections {
		blocks = append(blocks, fmt.Sprintf("%s:\n%s", sec.Title, sec.Content))
	}

	return strings.Join(blocks, "\n\n"), nil
}
