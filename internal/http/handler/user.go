package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"stubapi/internal/model"
	"stubapi/internal/service"
)

// RegisterUserRoutes attaches the health and user stub routes.
func RegisterUserRoutes(app fiber.Router, userSvc service.UserService) {
	app.Get("/health", HealthCheck())
	app.Post("/users", CreateUser(userSvc))
}

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Router /health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(model.NewHealthResponse())
	}
}

// CreateUser godoc
// @Summary Create user (stub)
// @Description Echoes the name field with a placeholder id. Nothing is stored.
// @Description Missing or malformed bodies are treated as an empty object.
// @Tags users
// @Accept json
// @Produce json
// @Param body body model.UserCreateRequest false "user"
// @Success 201 {object} model.UserCreateResponse
// @Router /users [post]
func CreateUser(userSvc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := parseUserCreateRequest(c.Body())
		res := userSvc.Create(c.UserContext(), req)
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// parseUserCreateRequest never fails: anything that is not a JSON object
// yields an empty request, including bodies that are not valid UTF-8.
// Keys match case-sensitively and numbers keep their original text.
func parseUserCreateRequest(body []byte) model.UserCreateRequest {
	if !utf8.Valid(body) {
		return model.UserCreateRequest{}
	}

	var fields map[string]any

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return model.UserCreateRequest{}
	}
	// Trailing data after the object makes the body malformed.
	if _, err := dec.Token(); err != io.EOF {
		return model.UserCreateRequest{}
	}

	return model.UserCreateRequest{Name: fields["name"]}
}
