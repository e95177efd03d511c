package params

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Pagination
	}{
		{"absent returns everything", "", Pagination{Limit: 0, Page: 1, Offset: 0}},
		{"limit only", "limit=10", Pagination{Limit: 10, Page: 1, Offset: 0}},
		{"page only uses default limit", "page=3", Pagination{Limit: DefaultLimit, Page: 3, Offset: 2 * DefaultLimit}},
		{"limit and page", "limit=30&page=2", Pagination{Limit: 30, Page: 2, Offset: 30}},
		{"limit is capped", "limit=1000", Pagination{Limit: MaxLimit, Page: 1, Offset: 0}},
		{"non-positive limit falls back", "limit=-5", Pagination{Limit: DefaultLimit, Page: 1, Offset: 0}},
		{"garbage page ignored", "limit=5&page=abc", Pagination{Limit: 5, Page: 1, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParsePagination(q))
		})
	}
}
