package dto

// GenerateBacklogRequest takes either a persisted PRD id or free-form text.
// Exactly one source is required; the service rejects requests with neither.
type GenerateBacklogRequest struct {
	PrdId       *int   `json:"prd_id"`
	Description string `json:"description"`
}

type GenerateBacklogResponse struct {
	Message      string `json:"message"`
	CreatedCount int    `json:"created_count"`
	UsedFallback bool   `json:"used_fallback"`
}
