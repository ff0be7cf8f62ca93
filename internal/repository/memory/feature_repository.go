package memory

import (
	"context"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/repository/contract"
)

type FeatureRepository struct {
	store *Store
}

var _ contract.FeatureRepository = &FeatureRepository{}

func NewFeatureRepository(store *Store) *FeatureRepository {
	return &FeatureRepository{store: store}
}

func (r *FeatureRepository) Create(ctx context.Context, feature *entity.Feature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	feature.Id = r.store.nextFeatureId
	r.store.nextFeatureId++

	copied := *feature
	r.store.features[feature.Id] = &copied
	return nil
}

func (r *FeatureRepository) Update(ctx context.Context, feature *entity.Feature) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	copied := *feature
	r.store.features[feature.Id] = &copied
	return nil
}

// Delete is idempotent: removing an absent id is a no-op.
func (r *FeatureRepository) Delete(ctx context.Context, userId uuid.UUID, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if f, ok := r.store.features[id]; ok && f.UserId == userId {
		delete(r.store.features, id)
	}
	return nil
}

func (r *FeatureRepository) FindById(ctx context.Context, userId uuid.UUID, id int) (*entity.Feature, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, ok := r.store.features[id]
	if !ok || f.UserId != userId {
		return nil, nil
	}
	copied := *f
	return &copied, nil
}

func (r *FeatureRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Feature, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.featuresByUser(userId), nil
}

func (r *FeatureRepository) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for _, f := range r.store.features {
		if f.UserId == userId {
			count++
		}
	}
	return count, nil
}

func (r *FeatureRepository) HoldsOrder(ctx context.Context, userId uuid.UUID, order int, excludeId int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.features {
		if f.UserId == userId && f.Order == order && f.Id != excludeId {
			return true, nil
		}
	}
	return false, nil
}

func (r *FeatureRepository) ShiftOrdersUp(ctx context.Context, userId uuid.UUID, fromOrder int, excludeId int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.features {
		if f.UserId == userId && f.Order >= fromOrder && f.Id != excludeId {
			f.Order++
		}
	}
	return nil
}
