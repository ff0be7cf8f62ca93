package entity

import (
	"time"

	"github.com/google/uuid"

	"pocket-pm-be/pkg/rice"
)

// Feature is one backlog item. Score is derived from the four RICE inputs at
// creation time and never recomputed afterward. Order is the position within
// the owner's backlog; deletions may leave gaps.
type Feature struct {
	Id          int
	UserId      uuid.UUID
	Title       string
	Description string
	Reach       int
	Impact      int
	Confidence  int
	Effort      int
	Score       float64
	Order       int
	Priority    rice.Priority
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
