package mocks

import (
	"context"

	"devcamper/internal/model"
	"devcamper/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBootcampService struct {
	mock.Mock
}

func (m *MockBootcampService) List(ctx context.Context, params map[string]string) (*service.ListResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockBootcampService) Get(ctx context.Context, id string) (*model.Bootcamp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bootcamp), args.Error(1)
}

func (m *MockBootcampService) Create(ctx context.Context, in service.BootcampInput) (*model.Bootcamp, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bootcamp), args.Error(1)
}

func (m *MockBootcampService) Update(ctx context.Context, id string, p service.BootcampPatch) (*model.Bootcamp, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bootcamp), args.Error(1)
}

func (m *MockBootcampService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBootcampService) WithinRadius(ctx context.Context, zipcode, distance string) ([]model.Bootcamp, error) {
	args := m.Called(ctx, zipcode, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bootcamp), args.Error(1)
}

func (m *MockBootcampService) UploadPhoto(ctx context.Context, id string, f *service.PhotoUpload) (string, error) {
	args := m.Called(ctx, id, f)
	return args.String(0), args.Error(1)
}

func (m *MockBootcampService) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
