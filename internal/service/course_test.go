package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devcamper/internal/apperror"
	"devcamper/internal/model"
	"devcamper/internal/query"
	"devcamper/internal/repository"
	repoMocks "devcamper/internal/repository/mocks"
)

const courseID = "0f7a9a44-3c2f-4f59-9d3e-6b1c2b9a1e10"

func newCourseDeps() (*repoMocks.MockCourseRepository, *repoMocks.MockBootcampRepository, CourseService) {
	courses := new(repoMocks.MockCourseRepository)
	bootcamps := new(repoMocks.MockBootcampRepository)
	return courses, bootcamps, NewCourseService(courses, bootcamps)
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string { return &v }

func TestCourseService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("all courses", func(t *testing.T) {
		courses, bootcamps, svc := newCourseDeps()
		courses.On("List", ctx, "", mock.MatchedBy(func(d query.Descriptor) bool {
			return len(d.Filters) == 1 && d.Filters[0].Op == query.Lt
		})).Return(&repository.PageResult[model.Course]{
			Items: []model.Course{{ID: "c1", Bootcamp: &model.BootcampSummary{ID: "b1", Name: "Devworks"}}},
			Total: 1,
		}, nil)

		res, err := svc.List(ctx, "", map[string]string{"weeks[lt]": "10"})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
		assert.Nil(t, res.Pagination.Next)
		assert.Nil(t, res.Pagination.Prev)
		courses.AssertExpectations(t)
		bootcamps.AssertExpectations(t)
	})

	t.Run("scoped to a missing bootcamp", func(t *testing.T) {
		courses, bootcamps, svc := newCourseDeps()
		bootcamps.On("FindByID", ctx, bootcampID).Return(nil, sql.ErrNoRows)

		_, err := svc.List(ctx, bootcampID, map[string]string{})

		assertKind(t, err, apperror.KindNotFound)
		courses.AssertExpectations(t)
		bootcamps.AssertExpectations(t)
	})

	t.Run("bad operator for text", func(t *testing.T) {
		_, _, svc := newCourseDeps()
		_, err := svc.List(ctx, "", map[string]string{"title[gt]": "a"})
		assertKind(t, err, apperror.KindBadRequest)
	})
}

func TestCourseService_Create(t *testing.T) {
	ctx := context.Background()
	in := CourseInput{
		Title:        "Front End Web Development",
		Description:  "HTML, CSS and JavaScript",
		Weeks:        intPtr(8),
		Tuition:      floatPtr(8000),
		MinimumSkill: "beginner",
	}

	t.Run("happy path", func(t *testing.T) {
		courses, bootcamps, svc := newCourseDeps()
		bootcamps.On("FindByID", ctx, bootcampID).Return(&model.Bootcamp{ID: bootcampID}, nil)
		courses.On("Create", ctx, &model.Course{
			Title:        in.Title,
			Description:  in.Description,
			Weeks:        8,
			Tuition:      8000,
			MinimumSkill: "beginner",
			BootcampID:   bootcampID,
		}).Return(&model.Course{ID: courseID, BootcampID: bootcampID}, nil)

		out, err := svc.Create(ctx, bootcampID, in)

		require.NoError(t, err)
		assert.Equal(t, courseID, out.ID)
		courses.AssertExpectations(t)
		bootcamps.AssertExpectations(t)
	})

	t.Run("unknown bootcamp", func(t *testing.T) {
		courses, bootcamps, svc := newCourseDeps()
		bootcamps.On("FindByID", ctx, bootcampID).Return(nil, sql.ErrNoRows)

		_, err := svc.Create(ctx, bootcampID, in)

		ae := assertKind(t, err, apperror.KindNotFound)
		assert.Equal(t, "Bootcamp not found with id of "+bootcampID, ae.Message)
		courses.AssertExpectations(t)
	})

	t.Run("bootcamp deleted before insert", func(t *testing.T) {
		courses, bootcamps, svc := newCourseDeps()
		bootcamps.On("FindByID", ctx, bootcampID).Return(&model.Bootcamp{ID: bootcampID}, nil)
		courses.On("Create", ctx, mock.Anything).
			Return(nil, fmt.Errorf("insert course: %w", &pgconn.PgError{Code: "23503"}))

		_, err := svc.Create(ctx, bootcampID, in)

		ae := assertKind(t, err, apperror.KindNotFound)
		assert.Equal(t, "Bootcamp not found with id of "+bootcampID, ae.Message)
		courses.AssertExpectations(t)
	})

	t.Run("invalid payload", func(t *testing.T) {
		courses, bootcamps, svc := newCourseDeps()
		bootcamps.On("FindByID", ctx, bootcampID).Return(&model.Bootcamp{ID: bootcampID}, nil)

		_, err := svc.Create(ctx, bootcampID, CourseInput{Title: "x", Description: "y", MinimumSkill: "expert"})

		ae := assertKind(t, err, apperror.KindValidation)
		assert.Contains(t, ae.Message, "Please add number of weeks")
		assert.Contains(t, ae.Message, "Please add a tuition cost")
		assert.Contains(t, ae.Message, "minimumSkill must be one of: beginner, intermediate, advanced")
		courses.AssertExpectations(t)
	})
}

func TestCourseService_Update(t *testing.T) {
	ctx := context.Background()

	courses, _, svc := newCourseDeps()
	summary := &model.BootcampSummary{ID: bootcampID, Name: "Devworks"}
	courses.On("FindByID", ctx, courseID).Return(&model.Course{
		ID: courseID, Title: "Old", Description: "d", Weeks: 8, Tuition: 8000,
		MinimumSkill: "beginner", BootcampID: bootcampID, Bootcamp: summary,
	}, nil)
	courses.On("Update", ctx, mock.MatchedBy(func(c *model.Course) bool {
		return c.Title == "New" && c.Tuition == 9000 && c.Weeks == 8
	})).Return(&model.Course{ID: courseID, Title: "New", Tuition: 9000, BootcampID: bootcampID}, nil)

	out, err := svc.Update(ctx, courseID, CoursePatch{Title: stringPtr("New"), Tuition: floatPtr(9000)})

	require.NoError(t, err)
	assert.Equal(t, summary, out.Bootcamp)
	courses.AssertExpectations(t)
}

func TestCourseService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		courses, _, svc := newCourseDeps()
		courses.On("FindByID", ctx, courseID).Return(&model.Course{ID: courseID}, nil)
		courses.On("Delete", ctx, courseID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, courseID))
		courses.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		courses, _, svc := newCourseDeps()
		courses.On("FindByID", ctx, courseID).Return(nil, sql.ErrNoRows)

		err := svc.Delete(ctx, courseID)

		ae := assertKind(t, err, apperror.KindNotFound)
		assert.Equal(t, "Course not found with id of "+courseID, ae.Message)
		courses.AssertExpectations(t)
	})
}
