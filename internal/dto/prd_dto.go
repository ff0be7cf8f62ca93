package dto

import "time"

type GeneratePrdRequest struct {
	Description string `json:"description" validate:"required"`
	Industry    string `json:"industry"`
}

type PrdSectionPayload struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Order   int    `json:"order" validate:"min=0"`
}

type GeneratePrdResponse struct {
	Sections     []PrdSectionPayload `json:"sections"`
	UsedFallback bool                `json:"used_fallback"`
}

type CreatePrdRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Sections    []PrdSectionPayload `json:"sections" validate:"required,min=1,dive"`
}

type PrdResponse struct {
	Id          int                 `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Sections    []PrdSectionPayload `json:"sections"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at,omitempty"`
}
