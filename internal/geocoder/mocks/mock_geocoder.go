package mocks

import (
	"context"

	"devcamper/internal/geocoder"

	"github.com/stretchr/testify/mock"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, location string) ([]geocoder.Result, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geocoder.Result), args.Error(1)
}
