package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	peerResponseModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/model"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/service"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/response"
	"github.com/DannyWilsonCodeShop/classcast-platform/internal/validator"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ValidateResponse(
	ctx context.Context,
	req *peerResponseModel.ValidateResponseRequest,
) (*peerResponseModel.ValidationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*peerResponseModel.ValidationResult), args.Error(1)
}

func (m *mockService) SubmitResponse(
	ctx context.Context,
	req *peerResponseModel.SubmitResponseRequest,
) (*peerResponseModel.PeerResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*peerResponseModel.PeerResponse), args.Error(1)
}

func (m *mockService) ListVideoResponses(ctx context.Context, videoID string) ([]peerResponseModel.PeerResponse, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]peerResponseModel.PeerResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	validator.Setup()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(svc, zap.NewNop().Sugar())
	r.POST("/peerResponses/validate", h.ValidateResponse)
	r.POST("/peerResponses/submit", h.SubmitResponse)
	r.GET("/peerResponses/list", h.ListVideoResponses)
	return r
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_ValidateResponse(t *testing.T) {
	t.Run("returns result", func(t *testing.T) {
		svc := new(mockService)
		router := setupRouter(svc)
		result := peerResponseModel.NewValidationResult()
		result.AddError("Response must be at least 50 words (currently 30)")
		svc.On("ValidateResponse", mock.Anything, mock.MatchedBy(func(req *peerResponseModel.ValidateResponseRequest) bool {
			return req.VideoID == "v1" && req.Assignment != nil && *req.Assignment.ResponseWordLimit == 50
		})).Return(result, nil)

		w := postJSON(router, "/peerResponses/validate",
			`{"assignmentId":"a1","videoId":"v1","studentId":"s1","content":"hi",`+
				`"assignment":{"enablePeerResponses":true,"responseWordLimit":50}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp peerResponseModel.ValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Validation.CanSubmit)
		assert.Equal(t, result.Errors, resp.Validation.Errors)
		assert.Empty(t, resp.Validation.Warnings)
		svc.AssertExpectations(t)
	})

	t.Run("missing video id", func(t *testing.T) {
		w := postJSON(setupRouter(new(mockService)), "/peerResponses/validate",
			`{"assignmentId":"a1","studentId":"s1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "videoId is a required field")
	})

	t.Run("unknown assignment", func(t *testing.T) {
		svc := new(mockService)
		router := setupRouter(svc)
		svc.On("ValidateResponse", mock.Anything, mock.Anything).Return(nil, assignmentModel.ErrAssignmentNotFound)

		w := postJSON(router, "/peerResponses/validate", `{"assignmentId":"a1","videoId":"v1","studentId":"s1"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_SubmitResponse(t *testing.T) {
	body := `{"assignmentId":"a1","videoId":"v1","studentId":"s1","studentName":"Ada","content":"Nice pacing"}`

	t.Run("created", func(t *testing.T) {
		svc := new(mockService)
		router := setupRouter(svc)
		svc.On("SubmitResponse", mock.Anything, &peerResponseModel.SubmitResponseRequest{
			AssignmentID: "a1", VideoID: "v1", StudentID: "s1", StudentName: "Ada", Content: "Nice pacing",
		}).Return(&peerResponseModel.PeerResponse{ResponseID: "r1", Content: "Nice pacing", WordCount: 2}, nil)

		w := postJSON(router, "/peerResponses/submit", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"responseId":"r1"`)
		assert.Contains(t, w.Body.String(), `"wordCount":2`)
	})

	t.Run("rejected by validation", func(t *testing.T) {
		svc := new(mockService)
		router := setupRouter(svc)
		result := peerResponseModel.NewValidationResult()
		result.AddError("This video has reached the maximum number of responses (3)")
		svc.On("SubmitResponse", mock.Anything, mock.Anything).
			Return(nil, &peerResponseModel.ValidationError{Result: result})

		w := postJSON(router, "/peerResponses/submit", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp ValidationFailedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, response.CodeValidationFailed, resp.Error.Code)
		assert.Equal(t, "This video has reached the maximum number of responses (3)", resp.Error.Message)
		require.NotNil(t, resp.Validation)
		assert.False(t, resp.Validation.CanSubmit)
	})

	t.Run("empty after sanitizing", func(t *testing.T) {
		svc := new(mockService)
		router := setupRouter(svc)
		svc.On("SubmitResponse", mock.Anything, mock.Anything).Return(nil, peerResponseModel.ErrEmptyContent)

		w := postJSON(router, "/peerResponses/submit", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "content is required")
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(mockService)
		router := setupRouter(svc)
		svc.On("SubmitResponse", mock.Anything, mock.Anything).Return(nil, errors.New("disk full"))

		w := postJSON(router, "/peerResponses/submit", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk full")
	})
}

func TestHandler_ListVideoResponses(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)
	svc.On("ListVideoResponses", mock.Anything, "v1").Return([]peerResponseModel.PeerResponse{
		{ResponseID: "r1", VideoID: "v1"},
		{ResponseID: "r2", VideoID: "v1"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/peerResponses/list?videoId=v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp peerResponseModel.VideoResponsesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "r1", resp.Responses[0].ResponseID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/peerResponses/list", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
