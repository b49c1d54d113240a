package mocks

import (
	"context"

	"devcamper/internal/model"
	"devcamper/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) List(ctx context.Context, bootcampID string, params map[string]string) (*service.ListResult, error) {
	args := m.Called(ctx, bootcampID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockCourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseService) Create(ctx context.Context, bootcampID string, in service.CourseInput) (*model.Course, error) {
	args := m.Called(ctx, bootcampID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, id string, p service.CoursePatch) (*model.Course, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseService) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
