package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ArchiveResponse represents the result of archiving an invoice document.
type ArchiveResponse struct {
	Location string `json:"location" example:"https://s3.amazonaws.com/novabill-archive/invoices/INV-2026-007.pdf"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
