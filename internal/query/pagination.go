package query

import "math"

// PageRef points at a neighbouring page.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries the neighbouring pages of a result window.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Window is the half-open range [Start, End) of matching rows on a page.
type Window struct {
	Start int
	End   int
}

// NewWindow computes the window for a 1-based page of the given size.
// Bounds saturate at math.MaxInt, so a page far past the end yields an
// empty window instead of a wrapped one.
func NewWindow(page, limit int) Window {
	return Window{Start: mulSat(page-1, limit), End: mulSat(page, limit)}
}

// mulSat multiplies non-negative a and b, clamping at math.MaxInt.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// Paginate describes the pages around page given the total number of matches.
// Pages past the end are valid and simply have no next page.
func Paginate(page, limit, total int) Pagination {
	w := NewWindow(page, limit)
	var p Pagination
	if w.End < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if w.Start > 0 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return p
}
