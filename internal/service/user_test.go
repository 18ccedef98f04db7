package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"stubapi/internal/model"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService()

	tests := []struct {
		name string
		req  model.UserCreateRequest
		want any
	}{
		{name: "string name", req: model.UserCreateRequest{Name: "alice"}, want: "alice"},
		{name: "absent name", req: model.UserCreateRequest{}, want: nil},
		{name: "non-string name", req: model.UserCreateRequest{Name: json.Number("42")}, want: json.Number("42")},
		{name: "object name", req: model.UserCreateRequest{Name: map[string]any{"first": "a"}}, want: map[string]any{"first": "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Create(ctx, tt.req)
			require.NotNil(t, got)
			assert.Equal(t, model.PlaceholderUserID, got.ID)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestUserService_CreateNeverIncrements(t *testing.T) {
	svc := NewUserService()
	req := model.UserCreateRequest{Name: "bob"}

	for i := 0; i < 5; i++ {
		got := svc.Create(context.Background(), req)
		assert.Equal(t, 1, got.ID)
	}
}

func TestUserService_CreateRecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	svc := &userService{tracer: tp.Tracer(tracerName)}
	svc.Create(context.Background(), model.UserCreateRequest{Name: "carol"})

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "UserService.Create", spans[0].Name())
}
