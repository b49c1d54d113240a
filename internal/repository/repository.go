// Package repository contains data access abstractions. Implementations live
// in subpackages (postgres) and contain no business rules: they return raw
// driver errors such as sql.ErrNoRows wrapped with context.
package repository

import (
	"context"

	"devcamper/internal/model"
	"devcamper/internal/query"
)

// BootcampRepository persists bootcamps. Reads populate Courses.
type BootcampRepository interface {
	// List returns one page of bootcamps matching d and the total match count.
	// Only the columns backing d.Select (plus id) are read.
	List(ctx context.Context, d query.Descriptor) (*PageResult[model.Bootcamp], error)

	FindByID(ctx context.Context, id string) (*model.Bootcamp, error)

	// WithinRadius returns bootcamps whose great-circle angular distance from
	// (lat, lng) is at most radius radians.
	WithinRadius(ctx context.Context, lat, lng, radius float64) ([]model.Bootcamp, error)

	// Create inserts b and returns the stored row.
	Create(ctx context.Context, b *model.Bootcamp) (*model.Bootcamp, error)

	// Update overwrites every mutable column of b.ID and returns the stored row.
	Update(ctx context.Context, b *model.Bootcamp) (*model.Bootcamp, error)

	// UpdatePhoto sets only the photo column.
	UpdatePhoto(ctx context.Context, id, photo string) error

	// Delete removes the bootcamp; its courses go with it.
	Delete(ctx context.Context, id string) error

	DeleteAll(ctx context.Context) error
}

// CourseRepository persists courses. Every mutation recomputes the owning
// bootcamp's average cost in the same transaction.
type CourseRepository interface {
	// List returns one page of courses matching d. A non-empty bootcampID
	// restricts the result to that bootcamp.
	List(ctx context.Context, bootcampID string, d query.Descriptor) (*PageResult[model.Course], error)

	FindByID(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
	Update(ctx context.Context, c *model.Course) (*model.Course, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
