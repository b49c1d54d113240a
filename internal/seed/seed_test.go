package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devcamper/internal/model"
	"devcamper/internal/service"
	serviceMocks "devcamper/internal/service/mocks"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const bootcampsFixture = `[
  {
    "name": "Devworks Bootcamp",
    "description": "Full stack",
    "careers": ["Web Development"],
    "location": {"type": "Point", "coordinates": [-71.104028, 42.350846], "city": "Boston"}
  },
  {"name": "ModernTech Bootcamp", "description": "Mobile", "careers": ["Mobile Development"]}
]`

const coursesFixture = `[
  {"bootcamp": "Devworks Bootcamp", "title": "Front End", "description": "d", "weeks": 8, "tuition": 8000, "minimumSkill": "beginner"},
  {"bootcamp": "ModernTech Bootcamp", "title": "Swift", "description": "d", "weeks": 12, "tuition": 10000, "minimumSkill": "intermediate"}
]`

func TestImport(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, BootcampsFile, bootcampsFixture)
	writeFixture(t, dir, CoursesFile, coursesFixture)

	bootcamps := new(serviceMocks.MockBootcampService)
	courses := new(serviceMocks.MockCourseService)

	bootcamps.On("Create", mock.Anything, mock.MatchedBy(func(in service.BootcampInput) bool {
		return in.Name == "Devworks Bootcamp" && in.Location != nil && in.Location.Lat() == 42.350846
	})).Return(&model.Bootcamp{ID: "b1", Name: "Devworks Bootcamp"}, nil).Once()
	bootcamps.On("Create", mock.Anything, mock.MatchedBy(func(in service.BootcampInput) bool {
		return in.Name == "ModernTech Bootcamp"
	})).Return(&model.Bootcamp{ID: "b2", Name: "ModernTech Bootcamp"}, nil).Once()

	courses.On("Create", mock.Anything, "b1", mock.MatchedBy(func(in service.CourseInput) bool {
		return in.Title == "Front End" && *in.Weeks == 8
	})).Return(&model.Course{ID: "c1"}, nil).Once()
	courses.On("Create", mock.Anything, "b2", mock.MatchedBy(func(in service.CourseInput) bool {
		return in.Title == "Swift" && *in.Tuition == 10000
	})).Return(&model.Course{ID: "c2"}, nil).Once()

	stats, err := New(bootcamps, courses).Import(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, Stats{Bootcamps: 2, Courses: 2}, stats)

	bootcamps.AssertExpectations(t)
	courses.AssertExpectations(t)
}

func TestImport_WithoutCoursesFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, BootcampsFile, `[{"name":"Solo","description":"d","careers":["Other"]}]`)

	bootcamps := new(serviceMocks.MockBootcampService)
	bootcamps.On("Create", mock.Anything, mock.Anything).Return(&model.Bootcamp{ID: "b1", Name: "Solo"}, nil).Once()

	stats, err := New(bootcamps, new(serviceMocks.MockCourseService)).Import(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, Stats{Bootcamps: 1}, stats)
}

func TestImport_Failures(t *testing.T) {
	t.Run("missing bootcamps file", func(t *testing.T) {
		_, err := New(nil, nil).Import(context.Background(), t.TempDir())
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir, BootcampsFile, `[{"name":`)

		_, err := New(nil, nil).Import(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode bootcamps.json")
	})

	t.Run("create fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir, BootcampsFile, bootcampsFixture)

		bootcamps := new(serviceMocks.MockBootcampService)
		bootcamps.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate")).Once()

		stats, err := New(bootcamps, nil).Import(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `bootcamp "Devworks Bootcamp"`)
		assert.Zero(t, stats.Bootcamps)
	})

	t.Run("unknown bootcamp reference", func(t *testing.T) {
		dir := t.TempDir()
		writeFixture(t, dir, BootcampsFile, `[{"name":"Solo","description":"d","careers":["Other"]}]`)
		writeFixture(t, dir, CoursesFile, `[{"bootcamp":"Ghost","title":"T"}]`)

		bootcamps := new(serviceMocks.MockBootcampService)
		bootcamps.On("Create", mock.Anything, mock.Anything).Return(&model.Bootcamp{ID: "b1", Name: "Solo"}, nil).Once()

		_, err := New(bootcamps, new(serviceMocks.MockCourseService)).Import(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown bootcamp "Ghost"`)
	})
}

func TestDestroy(t *testing.T) {
	t.Run("courses then bootcamps", func(t *testing.T) {
		bootcamps := new(serviceMocks.MockBootcampService)
		courses := new(serviceMocks.MockCourseService)

		var order []string
		courses.On("DeleteAll", mock.Anything).Run(func(mock.Arguments) { order = append(order, "courses") }).Return(nil).Once()
		bootcamps.On("DeleteAll", mock.Anything).Run(func(mock.Arguments) { order = append(order, "bootcamps") }).Return(nil).Once()

		require.NoError(t, New(bootcamps, courses).Destroy(context.Background()))
		assert.Equal(t, []string{"courses", "bootcamps"}, order)
	})

	t.Run("stops on course failure", func(t *testing.T) {
		courses := new(serviceMocks.MockCourseService)
		courses.On("DeleteAll", mock.Anything).Return(errors.New("locked")).Once()

		err := New(new(serviceMocks.MockBootcampService), courses).Destroy(context.Background())
		assert.ErrorContains(t, err, "delete courses")
	})
}
