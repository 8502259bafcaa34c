package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/dashboard/donor", DashboardPath("DONOR"))
	assert.Equal(t, "/dashboard/organization", DashboardPath("ORGANIZATION"))
	assert.Equal(t, "/dashboard/admin", DashboardPath("ADMIN"))
	assert.Equal(t, LoginPath, DashboardPath(""))
	assert.Equal(t, LoginPath, DashboardPath("SOMETHING_ELSE"))
}

func newRoleTestRouter(role string, required ...identity.Role) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(JWTRoleKey, role)
		}
		c.Next()
	})
	router.GET("/protected", RequireRole(required...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequireRole_Allowed(t *testing.T) {
	router := newRoleTestRouter("DONOR", identity.RoleDonor)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	router := newRoleTestRouter("ORGANIZATION", identity.RoleDonor)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/organization", rec.Header().Get("Location"))

	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeForbidden, resp.Error.Code)
}

func TestRequireRole_MissingRoleRedirectsToLogin(t *testing.T) {
	router := newRoleTestRouter("", identity.RoleDonor)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	router := newRoleTestRouter("ADMIN", identity.RoleDonor, identity.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
