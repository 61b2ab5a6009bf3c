package usecase

import (
	"math"

	"local-services-marketplace/internal/delivery/dto"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// normalizePage replaces values below 1 with defaults and caps limit.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// pageOffset saturates instead of overflowing for absurd page numbers; the
// repository answers an out-of-range offset with an empty page.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt32/limit {
		return math.MaxInt32
	}
	return (page - 1) * limit
}

// buildPagination reports the requested page as current, even past the last page.
func buildPagination(page, limit int, total int64) dto.PaginationResponse {
	return dto.PaginationResponse{
		Current: page,
		Pages:   int((total + int64(limit) - 1) / int64(limit)),
		Total:   total,
	}
}
