package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/joshua-takyi/carrental/internal/models"
)

func parseOptionalFloat(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, badRequest(name + " must be a non-negative number")
	}
	return &v, nil
}

func parseOptionalInt(name, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil, badRequest(name + " must be a positive integer")
	}
	return &v, nil
}

// PageQuery is the raw pagination query. Anything unparsable falls back to
// the defaults.
type PageQuery struct {
	Page     string `form:"page"`
	PageSize string `form:"pageSize"`
}

func (q PageQuery) Resolve() models.Page {
	page, _ := strconv.Atoi(strings.TrimSpace(q.Page))
	size, _ := strconv.Atoi(strings.TrimSpace(q.PageSize))
	return models.NewPage(page, size)
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
