package model

const (
	// StatusOK is the status value reported by every liveness payload.
	StatusOK = "ok"
	// StatusMessage is the fixed message returned by the status probe.
	StatusMessage = "Flask API running"
)

// StatusResponse is the fixed payload of the status probe route.
type StatusResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Flask API running"`
}

// HealthResponse is the payload of the health route.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// NewStatusResponse builds a fresh status probe payload.
func NewStatusResponse() StatusResponse {
	return StatusResponse{Status: StatusOK, Message: StatusMessage}
}

// NewHealthResponse builds a fresh health payload.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: StatusOK}
}
