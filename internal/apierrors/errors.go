package apierrors

import (
	"net/http"

	"phishsim-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// Machine-readable error codes shared by handlers
const (
	CodeInvalidInput            = "INVALID_INPUT"
	CodeNotFound                = "NOT_FOUND"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeForbidden               = "FORBIDDEN"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeRateLimited             = "RATE_LIMITED"
	CodeInternal                = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one failed field validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, code, message string, details ...FieldError) {
	ctx := c.Request.Context()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, CodeNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	respond(c, http.StatusForbidden, code, message)
}

// InsufficientPermissions sends the 403 used when the actor's role is not allowed on a route
func InsufficientPermissions(c *gin.Context) {
	respond(c, http.StatusForbidden, CodeInsufficientPermissions, "Insufficient permissions")
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	respond(c, http.StatusConflict, code, message)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	respond(c, http.StatusTooManyRequests, CodeRateLimited, message)
}

// ServiceUnavailable sends a 503 response and logs the internal error
func ServiceUnavailable(c *gin.Context, code, message string, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "service unavailable", internalErr)
	respond(c, http.StatusServiceUnavailable, code, message)
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	ctx := c.Request.Context()
	logger.Error(ctx, "internal error", internalErr)
	respond(c, http.StatusInternalServerError, CodeInternal, "An internal error occurred. Please try again later.")
}
