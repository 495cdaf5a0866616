package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bad request",
			write:      func(c *gin.Context) { BadRequest(c, "assignmentId parameter is required") },
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"INVALID_REQUEST","message":"assignmentId parameter is required"}}`,
		},
		{
			name:       "bind error",
			write:      func(c *gin.Context) { BindError(c, errors.New("EOF")) },
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"INVALID_REQUEST","message":"invalid request body: EOF"}}`,
		},
		{
			name:       "not found",
			write:      func(c *gin.Context) { NotFound(c, "Invalid join code") },
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"code":"NOT_FOUND","message":"Invalid join code"}}`,
		},
		{
			name:       "conflict",
			write:      func(c *gin.Context) { Conflict(c, "This group is full") },
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"code":"CONFLICT","message":"This group is full"}}`,
		},
		{
			name:       "internal",
			write:      Internal,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
