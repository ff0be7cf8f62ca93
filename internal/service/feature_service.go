package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pocket-pm-be/internal/dto"
	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/pkg/apperrors"
	"pocket-pm-be/internal/pkg/serverutils"
	"pocket-pm-be/internal/repository/unitofwork"
	"pocket-pm-be/pkg/rice"
)

type IFeatureService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.FeatureResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	UpdateOrder(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeatureOrderRequest) (*dto.FeatureResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id int) error
	Import(ctx context.Context, userId uuid.UUID, req *dto.ImportFeaturesRequest) (*dto.ImportFeaturesResponse, error)
}

type featureService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeatureService(uowFactory unitofwork.RepositoryFactory) IFeatureService {
	return &featureService{
		uowFactory: uowFactory,
	}
}

func (s *featureService) List(ctx context.Context, userId uuid.UUID) ([]*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.FeatureResponse, len(features))
	for i, f := range features {
		response[i] = toFeatureResponse(f)
	}
	return response, nil
}

func (s *featureService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.FeatureRepository().CountByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	priority := rice.Priority(req.Priority)
	if req.Priority == "" {
		priority = rice.DefaultPriority
	}

	// Score is derived exactly once, here. New items append at the end of
	// the current order.
	feature := &entity.Feature{
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Reach:       req.Reach,
		Impact:      req.Impact,
		Confidence:  req.Confidence,
		Effort:      req.Effort,
		Score:       rice.Score(req.Reach, req.Impact, req.Confidence, req.Effort),
		Order:       int(count),
		Priority:    priority,
		CreatedAt:   time.Now(),
	}

	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	return toFeatureResponse(feature), nil
}

func (s *featureService) UpdateOrder(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeatureOrderRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindById(ctx, userId, req.Id)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, apperrors.NewNotFound("feature")
	}

	newOrder := *req.Order
	if newOrder == feature.Order {
		return toFeatureResponse(feature), nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Another feature may already hold the target position; shift the tail
	// up by one so order stays unique within the scope.
	occupied, err := uow.FeatureRepository().HoldsOrder(ctx, userId, newOrder, feature.Id)
	if err != nil {
		return nil, err
	}
	if occupied {
		if err := uow.FeatureRepository().ShiftOrdersUp(ctx, userId, newOrder, feature.Id); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	feature.Order = newOrder
	feature.UpdatedAt = &now

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toFeatureResponse(feature), nil
}

// Delete is idempotent: deleting an unknown id succeeds silently and the
// orders of the remaining features are left untouched.
func (s *featureService) Delete(ctx context.Context, userId uuid.UUID, id int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeatureRepository().Delete(ctx, userId, id)
}

func (s *featureService) Import(ctx context.Context, userId uuid.UUID, req *dto.ImportFeaturesRequest) (*dto.ImportFeaturesResponse, error) {
	res := &dto.ImportFeaturesResponse{}

	// Rows are created one by one; a bad row is skipped and reported, rows
	// before and after it still land.
	for i, row := range req.Rows {
		if err := serverutils.ValidateStruct(row); err != nil {
			res.Skipped = append(res.Skipped, dto.SkippedImportRow{
				Index:  i,
				Reason: err.Error(),
			})
			continue
		}

		createReq := &dto.CreateFeatureRequest{
			Title:       row.Title,
			Description: row.Description,
			Reach:       row.Reach,
			Impact:      row.Impact,
			Confidence:  row.Confidence,
			Effort:      row.Effort,
		}
		if _, err := s.Create(ctx, userId, createReq); err != nil {
			res.Skipped = append(res.Skipped, dto.SkippedImportRow{
				Index:  i,
				Reason: fmt.Sprintf("create failed: %v", err),
			})
			continue
		}
		res.CreatedCount++
	}

	return res, nil
}

func toFeatureResponse(f *entity.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		Id:          f.Id,
		Title:       f.Title,
		Description: f.Description,
		Reach:       f.Reach,
		Impact:      f.Impact,
		Confidence:  f.Confidence,
		Effort:      f.Effort,
		Score:       f.Score,
		Order:       f.Order,
		Priority:    string(f.Priority),
		CreatedAt:   f.CreatedAt,
	}
}
