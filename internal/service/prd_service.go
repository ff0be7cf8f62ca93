package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/repository/unitofwork"
	"pocket-pm-be/pkg/prdgen"
)

type IPrdService interface {
	Generate(ctx context.Context, req *dto.GeneratePrdRequest) (*dto.GeneratePrdResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePrdRequest) (*dto.PrdResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.PrdResponse, error)
	Get(ctx context.Context, userId uuid.UUID, id int) (*dto.PrdResponse, error)
}

type prdService struct {
	uowFactory unitofwork.RepositoryFactory
	generator  *prdgen.Generator
}

func NewPrdService(uowFactory unitofwork.RepositoryFactory, generator *prdgen.Generator) IPrdService {
	return &prdService{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

func (s *prdService) Generate(ctx context.Context, req *dto.GeneratePrdRequest) (*dto.GeneratePrdResponse, error) {
	sections, usedFallback := s.generator.Generate(ctx, req.Description, req.Industry)

	payload := make([]dto.PrdSectionPayload, len(sections))
	for i, sec := range sections {
		payload[i] = dto.PrdSectionPayload{
			Title:   sec.Title,
			Content: sec.Content,
			Order:   sec.Order,
		}
	}

	return &dto.GeneratePrdResponse{
		Sections:     payload,
		UsedFallback: usedFallback,
	}, nil
}

func (s *prdService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePrdRequest) (*dto.PrdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Section orders are stored exactly as submitted; the client owns their
	// numbering.
	sections := make([]entity.PrdSection, len(req.Sections))
	for i, sec := range req.Sections {
		sections[i] = entity.PrdSection{
			Title:   sec.Title,
			Content: sec.Content,
			Order:   sec.Order,
		}
	}

	prd := &entity.Prd{
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		Sections:    sections,
		CreatedAt:   time.Now(),
	}

	if err := uow.PrdRepository().Create(ctx, prd); err != nil {
		return nil, err
	}

	return toPrdResponse(prd), nil
}

func (s *prdService) List(ctx context.Context, userId uuid.UUID) ([]*dto.PrdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prds, err := uow.PrdRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.PrdResponse, len(prds))
	for i, p := range prds {
		response[i] = toPrdResponse(p)
	}
	return response, nil
}

func (s *prdService) Get(ctx context.Context, userId uuid.UUID, id int) (*dto.PrdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prd, err := uow.PrdRepository().FindById(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if prd == nil {
		return nil, apperrors.NewNotFound("prd")
	}

	return toPrdResponse(prd), nil
}

func toPrdResponse(p *entity.Prd) *dto.PrdResponse {
	sections := make([]dto.PrdSectionPayload, len(p.Sections))
	for i, sec := range p.Sections {
		sections[i] = dto.PrdSectionPayload{
			Title:   sec.Title,
			Content: sec.Content,
			Order:   sec.Order,
		}
	}

	return &dto.PrdResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Sections:    sections,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
