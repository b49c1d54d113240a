package service

import (
	"devcamper/internal/query"
)

// ListResult is one page of a list endpoint, already projected.
type ListResult struct {
	Count      int
	Total      int
	Pagination query.Pagination
	Data       []any
}

// Project fields that survive any selection.
var (
	bootcampKeep = []string{"id", "courses"}
	courseKeep   = []string{"id", "bootcamp"}
)

func newListResult[T any](d query.Descriptor, items []T, total int, keep []string) (*ListResult, error) {
	data, err := query.Project(items, d.Select, keep...)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Count:      len(data),
		Total:      total,
		Pagination: query.Paginate(d.Page, d.Limit, total),
		Data:       data,
	}, nil
}
