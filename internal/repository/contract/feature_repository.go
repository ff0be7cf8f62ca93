package contract

import (
	"context"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
)

// FeatureRepository is the persistence contract for backlog features. Every
// read and write is scoped to a single owner; a FindById miss returns
// (nil, nil) rather than an error.
type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, userId uuid.UUID, id int) error
	FindById(ctx context.Context, userId uuid.UUID, id int) (*entity.Feature, error)
	// FindAllByUser returns the owner's features sorted ascending by order.
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Feature, error)
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
	// HoldsOrder reports whether any feature other than excludeId occupies
	// the given position in the owner's backlog.
	HoldsOrder(ctx context.Context, userId uuid.UUID, order int, excludeId int) (bool, error)
	// ShiftOrdersUp increments the order of every feature in the owner's
	// backlog with order >= fromOrder, excluding excludeId.
	ShiftOrdersUp(ctx context.Context, userId uuid.UUID, fromOrder int, excludeId int) error
}
