package mapper

import (
	"time"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/model"
	"pocket-pm-be/pkg/rice"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(f *model.Feature) *entity.Feature {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.Feature{
		Id:          f.Id,
		UserId:      f.UserId,
		Title:       f.Title,
		Description: f.Description,
		Reach:       f.Reach,
		Impact:      f.Impact,
		Confidence:  f.Confidence,
		Effort:      f.Effort,
		Score:       f.Score,
		Order:       f.Order,
		Priority:    rice.Priority(f.Priority),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *FeatureMapper) ToModel(f *entity.Feature) *model.Feature {
	if f == nil {
		return nil
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.Feature{
		Id:          f.Id,
		UserId:      f.UserId,
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
		UpdatedAt:   updatedAt,
	}
}

func (m *FeatureMapper) ToEntities(features []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, len(features))
	for i, f := range features {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
