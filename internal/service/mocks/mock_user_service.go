package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stubapi/internal/model"
)

// MockUserService is a testify mock of service.UserService.
type MockUserService struct {
	mock.Mock
}

// Create returns the *model.UserCreateResponse configured with On("Create", ...).
func (m *MockUserService) Create(ctx context.Context, req model.UserCreateRequest) *model.UserCreateResponse {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.UserCreateResponse)
}
