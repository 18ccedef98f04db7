package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"stubapi/internal/model"
)

const tracerName = "stubapi/internal/service"

// UserService defines the user creation use case.
type UserService interface {
	// Create answers a user creation request. No record is stored and the
	// returned id is always model.PlaceholderUserID.
	Create(ctx context.Context, req model.UserCreateRequest) *model.UserCreateResponse
}

// userService is the stub implementation of UserService.
type userService struct {
	tracer trace.Tracer
}

// NewUserService constructs a new UserService.
func NewUserService() UserService {
	return &userService{tracer: otel.Tracer(tracerName)}
}

func (s *userService) Create(ctx context.Context, req model.UserCreateRequest) *model.UserCreateResponse {
	_, span := s.tracer.Start(ctx, "UserService.Create")
	defer span.End()

	span.SetAttributes(
		attribute.Int("user.id", model.PlaceholderUserID),
		attribute.Bool("user.name_present", req.Name != nil),
	)

	return &model.UserCreateResponse{
		ID:   model.PlaceholderUserID,
		Name: req.Name,
	}
}
