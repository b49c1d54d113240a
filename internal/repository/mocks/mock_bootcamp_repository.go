package mocks

import (
	"context"

	"devcamper/internal/model"
	"devcamper/internal/query"
	"devcamper/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockBootcampRepository struct {
	mock.Mock
}

func (m *MockBootcampRepository) List(ctx context.Context, d query.Descriptor) (*repository.PageResult[model.Bootcamp], error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Bootcamp]), args.Error(1)
}

func (m *MockBootcampRepository) FindByID(ctx context.Context, id string) (*model.Bootcamp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bootcamp), args.Error(1)
}

func (m *MockBootcampRepository) WithinRadius(ctx context.Context, lat, lng, radius float64) ([]model.Bootcamp, error) {
	args := m.Called(ctx, lat, lng, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bootcamp), args.Error(1)
}

func (m *MockBootcampRepository) Create(ctx context.Context, b *model.Bootcamp) (*model.Bootcamp, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bootcamp), args.Error(1)
}

func (m *MockBootcampRepository) Update(ctx context.Context, b *model.Bootcamp) (*model.Bootcamp, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bootcamp), args.Error(1)
}

func (m *MockBootcampRepository) UpdatePhoto(ctx context.Context, id, photo string) error {
	args := m.Called(ctx, id, photo)
	return args.Error(0)
}

func (m *MockBootcampRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBootcampRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
