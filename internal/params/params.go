package params

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// URL: /api/businesses?page=2&limit=30
// → ParsePagination() → Pagination{Limit:30, Page:2, Offset:30}
// → SQL: SELECT ... LIMIT 30 OFFSET 30
//
// Without limit or page the whole list is returned (Limit 0).
type Pagination struct {
	Limit  int `json:"limit"`  // items per page, 0 = everything
	Offset int `json:"offset"` // SQL OFFSET value
	Page   int `json:"page"`   // Current Page number
}

// ParsePagination parses ?limit=...&page=... safely. Keys are case sensitive.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{Page: 1}

	limitStr := strings.TrimSpace(q.Get("limit"))
	pageStr := strings.TrimSpace(q.Get("page"))

	if limitStr == "" && pageStr == "" {
		return p
	}

	p.Limit = DefaultLimit
	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			switch {
			case limit <= 0:
				p.Limit = DefaultLimit
			case limit > MaxLimit:
				p.Limit = MaxLimit
			default:
				p.Limit = limit
			}
		}
	}

	if pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}
