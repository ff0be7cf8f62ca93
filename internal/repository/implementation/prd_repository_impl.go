package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/mapper"
	"pocket-pm-be/internal/model"
	"pocket-pm-be/internal/repository/contract"
	"pocket-pm-be/internal/repository/specification"
)

type PrdRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PrdMapper
}

func NewPrdRepository(db *gorm.DB) contract.PrdRepository {
	return &PrdRepositoryImpl{
		db:     db,
		mapper: mapper.NewPrdMapper(),
	}
}

func (r *PrdRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PrdRepositoryImpl) Create(ctx context.Context, prd *entity.Prd) error {
	m, err := r.mapper.ToModel(prd)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*prd = *created
	return nil
}

func (r *PrdRepositoryImpl) FindById(ctx context.Context, userId uuid.UUID, id int) (*entity.Prd, error) {
	var m model.Prd
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *PrdRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Prd, error) {
	var models []*model.Prd
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.OwnedBy{UserID: userId},
		specification.SortByCreation{},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}
