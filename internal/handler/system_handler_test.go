package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"car_rental/internal/model"
	"car_rental/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func systemRouter(p Pinger, jwtUtil *utils.JWTUtil) *gin.Engine {
	r := gin.New()
	NewSystemHandler(p, jwtUtil).RegisterSystemRoutes(r.Group("/api"))
	return r
}

func TestTestConnection(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, 1)

	w := httptest.NewRecorder()
	systemRouter(fakePinger{}, jwtUtil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test-connection", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	systemRouter(fakePinger{err: errors.New("down")}, jwtUtil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test-connection", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "down")
}

func TestAuthCheck(t *testing.T) {
	jwtUtil := utils.NewJWTUtil(testSecret, 1)
	router := systemRouter(fakePinger{}, jwtUtil)
	token, err := jwtUtil.GenerateToken(9, model.RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/check", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"user_id":9,"role":"customer"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/check", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
