package mapper

import (
	"encoding/json"
	"time"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/model"

	"gorm.io/datatypes"
)

type PrdMapper struct{}

func NewPrdMapper() *PrdMapper {
	return &PrdMapper{}
}

func (m *PrdMapper) ToEntity(p *model.Prd) (*entity.Prd, error) {
	if p == nil {
		return nil, nil
	}

	var sections []entity.PrdSection
	if len(p.Sections) > 0 {
		if err := json.Unmarshal(p.Sections, &sections); err != nil {
			return nil, err
		}
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Prd{
		Id:          p.Id,
		UserId:      p.UserId,
		Name:        p.Name,
		Description: p.Description,
		Sections:    sections,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (m *PrdMapper) ToModel(p *entity.Prd) (*model.Prd, error) {
	if p == nil {
		return nil, nil
	}

	raw, err := json.Marshal(p.Sections)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Prd{
		Id:          p.Id,
		UserId:      p.UserId,
		Name:        p.Name,
		Description: p.Description,
		Sections:    datatypes.JSON(raw),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (m *PrdMapper) ToEntities(prds []*model.Prd) ([]*entity.Prd, error) {
	entities := make([]*entity.Prd, len(prds))
	for i, p := range prds {
		e, err := m.ToEntity(p)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
