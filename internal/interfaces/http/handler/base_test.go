package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/alimenta/backend/internal/interfaces/http/dto"
	"github.com/alimenta/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetRequestID(t *testing.T) {
	c, _ := newTestContext(t)
	c.Set("request_id", "ctx-request-id")
	assert.Equal(t, "ctx-request-id", getRequestID(c))

	c2, _ := newTestContext(t)
	c2.Request.Header.Set("X-Request-ID", "header-request-id")
	assert.Equal(t, "header-request-id", getRequestID(c2))
}

func TestGetUserID(t *testing.T) {
	id := uuid.New()

	c, _ := newTestContext(t)
	c.Set(middleware.JWTUserIDKey, id.String())
	got, err := getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c2, _ := newTestContext(t)
	_, err = getUserID(c2)
	assert.Error(t, err)
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.Created(c, gin.H{"id": uuid.New().String()})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
}

func TestHandleError_DomainErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"concurrency conflict", shared.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"invalid transition", shared.ErrInvalidTransition, http.StatusUnprocessableEntity, "INVALID_TRANSITION"},
		{"invalid credentials", shared.NewDomainError("INVALID_CREDENTIALS", "bad login"), http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"validation prefix", shared.NewDomainError("INVALID_QUANTITY", "too small"), http.StatusBadRequest, "INVALID_QUANTITY"},
		{"unknown domain code", shared.NewDomainError("SOMETHING_ODD", "odd"), http.StatusInternalServerError, "SOMETHING_ODD"},
	}

	h := &BaseHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleError_NonDomainError(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.HandleError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrCodeInternal, decodeResponse(t, w).Error.Code)
}

func TestHandleErrorRedirect_NotFoundRedirectsToDashboard(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)
	c.Set(middleware.JWTRoleKey, "DONOR")

	h.HandleErrorRedirect(c, shared.ErrNotFound)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/donor", w.Header().Get("Location"))
	resp := decodeResponse(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestHandleErrorRedirect_OtherErrorsPassThrough(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)
	c.Set(middleware.JWTRoleKey, "DONOR")

	h.HandleErrorRedirect(c, shared.ErrConcurrencyConflict)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}
