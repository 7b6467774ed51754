package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novabill/internal/domain"
	"novabill/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusBadRequest, "CLIENT_NOT_FOUND", "referenced client does not exist"
	case errors.Is(err, domain.ErrItemsRequired):
		return http.StatusBadRequest, "ITEMS_REQUIRED", "at least one line item is required"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "invalid invoice status; allowed: draft, sent, paid, overdue"
	case errors.Is(err, domain.ErrDuplicateNumber):
		return http.StatusConflict, "DUPLICATE_NUMBER", "invoice number already exists"
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusBadRequest, "NAME_REQUIRED", "client name is required"
	case errors.Is(err, domain.ErrClientNoEmail):
		return http.StatusBadRequest, "CLIENT_NO_EMAIL", "invoice has no client with an email address"
	case errors.Is(err, domain.ErrArchiveDisabled):
		return http.StatusServiceUnavailable, "ARCHIVE_DISABLED", "document archive is not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] internal error: %v", middleware.GetRequestID(c), err)
	}
	RespondError(c, status, code, msg)
}
