package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"devcamper/internal/database"
	"devcamper/internal/model"
	"devcamper/internal/query"
	"devcamper/internal/repository"
)

const courseSelect = `SELECT c.id, c.title, c.description, c.weeks, c.tuition, c.minimum_skill,
	c.scholarship_available, c.bootcamp_id, c.created_at, b.name, b.description
	FROM courses c JOIN bootcamps b ON b.id = c.bootcamp_id`

// refreshAverageCost rounds the mean tuition up to the next multiple of ten;
// it becomes NULL when the bootcamp has no courses left.
const refreshAverageCost = `UPDATE bootcamps SET average_cost =
	(SELECT ceil(avg(tuition) / 10) * 10 FROM courses WHERE bootcamp_id = $1)
	WHERE id = $1`

// CoursePostgres is a PostgreSQL implementation of repository.CourseRepository.
type CoursePostgres struct {
	db *sql.DB
}

// NewCoursePostgres creates a new CoursePostgres repository.
func NewCoursePostgres(db *sql.DB) *CoursePostgres {
	return &CoursePostgres{db: db}
}

var _ repository.CourseRepository = (*CoursePostgres)(nil)

// List returns courses with their bootcamp summary embedded.
func (r *CoursePostgres) List(ctx context.Context, bootcampID string, d query.Descriptor) (*repository.PageResult[model.Course], error) {
	var a args
	var extra []string
	if bootcampID != "" {
		extra = append(extra, "c.bootcamp_id = "+a.bind(bootcampID))
	}
	where := a.where(d.Filters, extra...)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM courses c"+where, a...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count courses: %w", err)
	}

	q := courseSelect + where + orderBy(repository.CourseSchema, d.Sort, "c.id") + a.page(d)
	rows, err := r.db.QueryContext(ctx, q, a...)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	items := make([]model.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return &repository.PageResult[model.Course]{Items: items, Total: total}, nil
}

// FindByID fetches a single course with its bootcamp summary.
func (r *CoursePostgres) FindByID(ctx context.Context, id string) (*model.Course, error) {
	c, err := scanCourse(r.db.QueryRowContext(ctx, courseSelect+" WHERE c.id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}
	return c, nil
}

// Create inserts a course and refreshes its bootcamp's average cost.
func (r *CoursePostgres) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	out := *c
	err := database.InTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO courses (title, description, weeks, tuition, minimum_skill, scholarship_available, bootcamp_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`
		if err := tx.QueryRowContext(ctx, q,
			c.Title,
			c.Description,
			c.Weeks,
			c.Tuition,
			c.MinimumSkill,
			c.ScholarshipAvailable,
			c.BootcampID,
		).Scan(&out.ID, &out.CreatedAt); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, refreshAverageCost, c.BootcampID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	return &out, nil
}

// Update overwrites a course's mutable columns. The owning bootcamp is fixed.
func (r *CoursePostgres) Update(ctx context.Context, c *model.Course) (*model.Course, error) {
	out := *c
	err := database.InTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `
			UPDATE courses
			SET title = $2, description = $3, weeks = $4, tuition = $5, minimum_skill = $6, scholarship_available = $7
			WHERE id = $1
			RETURNING bootcamp_id, created_at
		`
		if err := tx.QueryRowContext(ctx, q,
			c.ID,
			c.Title,
			c.Description,
			c.Weeks,
			c.Tuition,
			c.MinimumSkill,
			c.ScholarshipAvailable,
		).Scan(&out.BootcampID, &out.CreatedAt); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, refreshAverageCost, out.BootcampID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return &out, nil
}

// Delete removes a course and refreshes its bootcamp's average cost.
// sql.ErrNoRows means there was nothing to delete.
func (r *CoursePostgres) Delete(ctx context.Context, id string) error {
	err := database.InTx(ctx, r.db, func(tx *sql.Tx) error {
		var bootcampID string
		if err := tx.QueryRowContext(ctx, `DELETE FROM courses WHERE id = $1 RETURNING bootcamp_id`, id).Scan(&bootcampID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, refreshAverageCost, bootcampID)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// DeleteAll empties the courses table and clears every average cost.
func (r *CoursePostgres) DeleteAll(ctx context.Context) error {
	return database.InTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
			return fmt.Errorf("delete courses: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE bootcamps SET average_cost = NULL`); err != nil {
			return fmt.Errorf("reset average cost: %w", err)
		}
		return nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner) (*model.Course, error) {
	var c model.Course
	var b model.BootcampSummary
	if err := s.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Weeks,
		&c.Tuition,
		&c.MinimumSkill,
		&c.ScholarshipAvailable,
		&c.BootcampID,
		&c.CreatedAt,
		&b.Name,
		&b.Description,
	); err != nil {
		return nil, err
	}
	b.ID = c.BootcampID
	c.Bootcamp = &b
	return &c, nil
}
