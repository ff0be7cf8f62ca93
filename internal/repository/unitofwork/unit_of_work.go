package unitofwork

import (
	"context"

	"pocket-pm-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FeatureRepository() contract.FeatureRepository
	PrdRepository() contract.PrdRepository
}
