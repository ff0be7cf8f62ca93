package dto

import "time"

type CreateFeatureRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Reach       int    `json:"reach" validate:"required,min=1,max=10"`
	Impact      int    `json:"impact" validate:"required,min=1,max=10"`
	Confidence  int    `json:"confidence" validate:"required,min=1,max=10"`
	Effort      int    `json:"effort" validate:"required,min=1,max=10"`
	Priority    string `json:"priority" validate:"omitempty,oneof=must should could wont"`
}

type FeatureResponse struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reach       int       `json:"reach"`
	Impact      int       `json:"impact"`
	Confidence  int       `json:"confidence"`
	Effort      int       `json:"effort"`
	Score       float64   `json:"score"`
	Order       int       `json:"order"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateFeatureOrderRequest struct {
	Id    int
	Order *int `json:"order" validate:"required,min=0"`
}

// ImportFeatureRow is one parsed CSV row; the client parses the file and
// posts the rows as JSON.
type ImportFeatureRow struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Reach       int    `json:"reach" validate:"required,min=1,max=10"`
	Impact      int    `json:"impact" validate:"required,min=1,max=10"`
	Confidence  int    `json:"confidence" validate:"required,min=1,max=10"`
	Effort      int    `json:"effort" validate:"required,min=1,max=10"`
}

type ImportFeaturesRequest struct {
	Rows []ImportFeatureRow `json:"rows" validate:"required,min=1"`
}

type SkippedImportRow struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type ImportFeaturesResponse struct {
	CreatedCount int                `json:"created_count"`
	Skipped      []SkippedImportRow `json:"skipped,omitempty"`
}
