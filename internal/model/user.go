package model

// PlaceholderUserID is the identifier reported for every created user.
// Nothing is stored, so it never changes.
const PlaceholderUserID = 1

// UserCreateRequest carries the only field read from a user creation body.
// Name holds whatever JSON value was sent, or nil when absent.
type UserCreateRequest struct {
	Name any `json:"name"`
}

// UserCreateResponse echoes the requested name with the placeholder id.
// A nil Name is encoded as JSON null.
type UserCreateResponse struct {
	ID   int `json:"id" example:"1"`
	Name any `json:"name" swaggertype:"string" example:"alice"`
}
