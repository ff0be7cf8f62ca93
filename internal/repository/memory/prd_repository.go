package memory

import (
	"context"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/repository/contract"
)

type PrdRepository struct {
	store *Store
}

var _ contract.PrdRepository = &PrdRepository{}

func NewPrdRepository(store *Store) *PrdRepository {
	return &PrdRepository{store: store}
}

func (r *PrdRepository) Create(ctx context.Context, prd *entity.Prd) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	prd.Id = r.store.nextPrdId
	r.store.nextPrdId++

	copied := *prd
	copied.Sections = append([]entity.PrdSection(nil), prd.Sections...)
	r.store.prds[prd.Id] = &copied
	return nil
}

func (r *PrdRepository) FindById(ctx context.Context, userId uuid.UUID, id int) (*entity.Prd, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.prds[id]
	if !ok || p.UserId != userId {
		return nil, nil
	}
	copied := *p
	copied.Sections = append([]entity.PrdSection(nil), p.Sections...)
	return &copied, nil
}

func (r *PrdRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Prd, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.prdsByUser(userId), nil
}
