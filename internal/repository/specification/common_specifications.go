package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by an integer primary key
type ByID struct {
	ID int
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OwnedBy scopes a query to a single owner
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByOrder filters features holding an exact backlog position.
// The column name is quoted because "order" is reserved in SQL.
type ByOrder struct {
	Order int
}

func (s ByOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`"order" = ?`, s.Order)
}

// ExcludeID filters out one record by primary key
type ExcludeID struct {
	ID int
}

func (s ExcludeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.ID)
}

// SortByPosition orders features by their backlog position, ascending
type SortByPosition struct{}

func (s SortByPosition) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}

// SortByCreation gives a stable listing order for PRDs
type SortByCreation struct{}

func (s SortByCreation) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}
