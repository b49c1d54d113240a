package service

import (
	"context"

	"devcamper/internal/apperror"
	"devcamper/internal/database"
	"devcamper/internal/model"
	"devcamper/internal/repository"
	"devcamper/internal/validation"
)

// CourseInput is the create payload.
type CourseInput struct {
	Title                string   `json:"title" validate:"required,max=100"`
	Description          string   `json:"description" validate:"required"`
	Weeks                *int     `json:"weeks" validate:"required,gte=1"`
	Tuition              *float64 `json:"tuition" validate:"required,gte=0"`
	MinimumSkill         string   `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool     `json:"scholarshipAvailable"`
}

// CoursePatch is the update payload; nil fields are left unchanged.
type CoursePatch struct {
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Weeks                *int     `json:"weeks"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimumSkill"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

// CourseService defines the course use cases. Every mutation refreshes the
// owning bootcamp's average cost.
type CourseService interface {
	// List returns one projected page of courses; a non-empty bootcampID
	// scopes it to an existing bootcamp.
	List(ctx context.Context, bootcampID string, params map[string]string) (*ListResult, error)

	Get(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, bootcampID string, in CourseInput) (*model.Course, error)
	Update(ctx context.Context, id string, p CoursePatch) (*model.Course, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type courseService struct {
	repo      repository.CourseRepository
	bootcamps repository.BootcampRepository
}

// NewCourseService constructs a new CourseService.
func NewCourseService(repo repository.CourseRepository, bootcamps repository.BootcampRepository) CourseService {
	return &courseService{repo: repo, bootcamps: bootcamps}
}

func (s *courseService) List(ctx context.Context, bootcampID string, params map[string]string) (*ListResult, error) {
	d, err := repository.CourseSchema.Parse(params)
	if err != nil {
		return nil, err
	}
	if bootcampID != "" {
		if err := s.requireBootcamp(ctx, bootcampID); err != nil {
			return nil, err
		}
	}
	res, err := s.repo.List(ctx, bootcampID, d)
	if err != nil {
		return nil, err
	}
	return newListResult(d, res.Items, res.Total, courseKeep)
}

func (s *courseService) Get(ctx context.Context, id string) (*model.Course, error) {
	if !validID(id) {
		return nil, apperror.NotFound("Course", id)
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Course", id)
	}
	return c, nil
}

func (s *courseService) Create(ctx context.Context, bootcampID string, in CourseInput) (*model.Course, error) {
	if err := s.requireBootcamp(ctx, bootcampID); err != nil {
		return nil, err
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	out, err := s.repo.Create(ctx, &model.Course{
		Title:                in.Title,
		Description:          in.Description,
		Weeks:                *in.Weeks,
		Tuition:              *in.Tuition,
		MinimumSkill:         in.MinimumSkill,
		ScholarshipAvailable: in.ScholarshipAvailable,
		BootcampID:           bootcampID,
	})
	if err != nil {
		// The bootcamp may be deleted between the check and the insert.
		if database.IsForeignKeyViolation(err) {
			return nil, apperror.NotFound("Bootcamp", bootcampID)
		}
		return nil, notFound(err, "Bootcamp", bootcampID)
	}
	return out, nil
}

func (s *courseService) Update(ctx context.Context, id string, p CoursePatch) (*model.Course, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in := CourseInput{
		Title:                c.Title,
		Description:          c.Description,
		Weeks:                &c.Weeks,
		Tuition:              &c.Tuition,
		MinimumSkill:         c.MinimumSkill,
		ScholarshipAvailable: c.ScholarshipAvailable,
	}
	set(&in.Title, p.Title)
	set(&in.Description, p.Description)
	set(&in.MinimumSkill, p.MinimumSkill)
	set(&in.ScholarshipAvailable, p.ScholarshipAvailable)
	if p.Weeks != nil {
		in.Weeks = p.Weeks
	}
	if p.Tuition != nil {
		in.Tuition = p.Tuition
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	c.Title = in.Title
	c.Description = in.Description
	c.Weeks = *in.Weeks
	c.Tuition = *in.Tuition
	c.MinimumSkill = in.MinimumSkill
	c.ScholarshipAvailable = in.ScholarshipAvailable

	out, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, notFound(err, "Course", id)
	}
	out.Bootcamp = c.Bootcamp
	return out, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "Course", id)
	}
	return nil
}

func (s *courseService) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *courseService) requireBootcamp(ctx context.Context, id string) error {
	if !validID(id) {
		return apperror.NotFound("Bootcamp", id)
	}
	if _, err := s.bootcamps.FindByID(ctx, id); err != nil {
		return notFound(err, "Bootcamp", id)
	}
	return nil
}
