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

type FeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewFeatureRepository(db *gorm.DB) contract.FeatureRepository {
	return &FeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func (r *FeatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeatureRepositoryImpl) Create(ctx context.Context, feature *entity.Feature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureRepositoryImpl) Update(ctx context.Context, feature *entity.Feature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID, id int) error {
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	return query.Delete(&model.Feature{}).Error
}

func (r *FeatureRepositoryImpl) FindById(ctx context.Context, userId uuid.UUID, id int) (*entity.Feature, error) {
	var m model.Feature
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
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Feature, error) {
	var models []*model.Feature
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.OwnedBy{UserID: userId},
		specification.SortByPosition{},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeatureRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feature{}),
		specification.OwnedBy{UserID: userId},
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FeatureRepositoryImpl) HoldsOrder(ctx context.Context, userId uuid.UUID, order int, excludeId int) (bool, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feature{}),
		specification.OwnedBy{UserID: userId},
		specification.ByOrder{Order: order},
		specification.ExcludeID{ID: excludeId},
	)
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FeatureRepositoryImpl) ShiftOrdersUp(ctx context.Context, userId uuid.UUID, fromOrder int, excludeId int) error {
	return r.db.WithContext(ctx).Model(&model.Feature{}).
		Where("user_id = ?", userId).
		Where(`"order" >= ?`, fromOrder).
		Where("id <> ?", excludeId).
		UpdateColumn("order", gorm.Expr(`"order" + 1`)).Error
}
