// Package response writes the JSON error body shared by all endpoints.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DannyWilsonCodeShop/classcast-platform/internal/validator"
)

// Error codes carried in the error body.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidOperation = "INVALID_OPERATION"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorBody is the code/message pair of an error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error writes an error response.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// BadRequest writes a 400 INVALID_REQUEST response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// BindError writes a 400 INVALID_REQUEST response for a failed request binding.
func BindError(c *gin.Context, err error) {
	BadRequest(c, validator.Message(err))
}

// NotFound writes a 404 NOT_FOUND response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict writes a 409 CONFLICT response.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, CodeConflict, message)
}

// Internal writes a 500 INTERNAL_ERROR response without exposing the cause.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
