package utils

// Pagination describes one bounded page window over a filtered result set.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Skip       int   `json:"-"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// CalculatePagination clamps page/limit and derives skip and totalPages.
// Page is floored at 1 and limit is clamped to [1,100].
func CalculatePagination(page, limit int, totalItems int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:       page,
		Limit:      limit,
		Skip:       (page - 1) * limit,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// HasNextPage reports whether another page exists after the current one.
func (p Pagination) HasNextPage() bool {
	return p.Page < p.TotalPages
}

// HasPrevPage reports whether a page exists before the current one.
func (p Pagination) HasPrevPage() bool {
	return p.Page > 1
}
