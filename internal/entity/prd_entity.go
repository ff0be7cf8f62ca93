package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrdSection is a titled block inside a PRD. Order is caller-assigned at
// generation time and stored verbatim.
type PrdSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type Prd struct {
	Id          int
	UserId      uuid.UUID
	Name        string
	Description string
	Sections    []PrdSection
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
