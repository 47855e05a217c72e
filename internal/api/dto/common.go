// Package dto provides request and response types shared by the movies API handlers.
// These types are used by huma to generate OpenAPI documentation.
package dto

// MessageResponse is a simple success message response.
type MessageResponse struct {
	Message string `json:"message" doc:"Success message"`
}

// MessageOutput wraps a message response for huma.
type MessageOutput struct {
	Body MessageResponse
}
