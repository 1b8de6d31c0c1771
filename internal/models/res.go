package models

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// ApiResponse is the envelope written by every endpoint.
type ApiResponse struct {
	Message    string       `json:"message"`
	Data       interface{}  `json:"data,omitempty"`
	Count      *int         `json:"count,omitempty"`
	URL        string       `json:"url,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	RequestID  string       `json:"requestId,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Message: message,
		Data:    data,
	}
}

func ListResponse(data interface{}, count int, message string) ApiResponse {
	return ApiResponse{
		Message: message,
		Data:    data,
		Count:   &count,
	}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Message: message,
	}
}

func ValidationResponse(errs []FieldError) ApiResponse {
	return ApiResponse{
		Message: "Validation failed",
		Errors:  errs,
	}
}

func PaginatedResponse(data interface{}, page Page, total int64, message string) ApiResponse {
	return ApiResponse{
		Message: message,
		Data:    data,
		Pagination: &Pagination{
			Total:      total,
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: page.TotalPages(total),
		},
	}
}

// Page is a 1-based page request.
type Page struct {
	Page     int
	PageSize int
}

// NewPage clamps a requested page to sane values: anything non-positive falls
// back to the defaults and the page size is capped at MaxPageSize.
func NewPage(page, pageSize int) Page {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Page{Page: page, PageSize: pageSize}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Page) TotalPages(total int64) int {
	if p.PageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.PageSize)))
}
