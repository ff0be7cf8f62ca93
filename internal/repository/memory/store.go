// Package memory provides map-backed repositories satisfying the same
// contracts as the GORM implementations. They back single-tenant deployments
// without a database and keep service tests free of infrastructure.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"pocket-pm-be/internal/entity"
)

// Store is the shared process-wide state behind the memory repositories.
// A mutex serializes access; per-request contention is negligible at this
// system's load profile.
type Store struct {
	mu sync.Mutex

	features      map[int]*entity.Feature
	nextFeatureId int

	prds      map[int]*entity.Prd
	nextPrdId int

	users map[uuid.UUID]*entity.User
}

func NewStore() *Store {
	return &Store{
		features:      make(map[int]*entity.Feature),
		nextFeatureId: 1,
		prds:          make(map[int]*entity.Prd),
		nextPrdId:     1,
		users:         make(map[uuid.UUID]*entity.User),
	}
}

func (s *Store) featuresByUser(userId uuid.UUID) []*entity.Feature {
	out := make([]*entity.Feature, 0)
	for _, f := range s.features {
		if f.UserId == userId {
			copied := *f
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Id < out[j].Id
	})
	return out
}

func (s *Store) prdsByUser(userId uuid.UUID) []*entity.Prd {
	out := make([]*entity.Prd, 0)
	for _, p := range s.prds {
		if p.UserId == userId {
			copied := *p
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Id < out[j].Id
	})
	return out
}
