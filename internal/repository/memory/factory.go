package memory

import (
	"context"

	"pocket-pm-be/internal/repository/contract"
	"pocket-pm-be/internal/repository/unitofwork"
)

// RepositoryFactory satisfies unitofwork.RepositoryFactory on top of a
// shared in-memory Store. Transactions are no-ops: writes apply immediately
// and the store mutex already serializes them.
type RepositoryFactory struct {
	store *Store
}

var _ unitofwork.RepositoryFactory = &RepositoryFactory{}

func NewRepositoryFactory(store *Store) *RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

type memoryUnitOfWork struct {
	store *Store
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *memoryUnitOfWork) FeatureRepository() contract.FeatureRepository {
	return NewFeatureRepository(u.store)
}

func (u *memoryUnitOfWork) PrdRepository() contract.PrdRepository {
	return NewPrdRepository(u.store)
}
