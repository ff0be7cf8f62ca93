package memory

import (
	"context"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/repository/contract"
)

type UserRepository struct {
	store *Store
}

var _ contract.UserRepository = &UserRepository{}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}
