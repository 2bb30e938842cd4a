package dto

// Category kinds accepted by the admin endpoints.
const (
	CategoryKindType   = "type"
	CategoryKindPeriod = "period"
)

type AddCategoryRequest struct {
	Kind        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DateRange   string `json:"date_range,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DateRange   string `json:"date_range,omitempty"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DateRange   string `json:"date_range,omitempty"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
	UsageCount  int64  `json:"usage_count"`
}

type CategoryListResponse struct {
	Success bool               `json:"success"`
	Types   []CategoryResponse `json:"types"`
	Periods []CategoryResponse `json:"periods"`
}
