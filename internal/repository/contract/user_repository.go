package contract

import (
	"context"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
