package contract

import (
	"context"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
)

// PrdRepository is the persistence contract for PRD documents. PRDs are
// create-and-read only; no update or delete operations exist.
type PrdRepository interface {
	Create(ctx context.Context, prd *entity.Prd) error
	FindById(ctx context.Context, userId uuid.UUID, id int) (*entity.Prd, error)
	// FindAllByUser returns the owner's PRDs in a stable order
	// (created_at asc, id asc).
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Prd, error)
}
