package middleware

import (
	"net/http"

	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DashboardPath returns the landing page for a role. Unknown or missing
// roles land on the login page.
func DashboardPath(role string) string {
	switch identity.Role(role) {
	case identity.RoleDonor:
		return "/dashboard/donor"
	case identity.RoleOrganization:
		return "/dashboard/organization"
	case identity.RoleAdmin:
		return "/dashboard/admin"
	}
	return LoginPath
}

// RequireRole gates a route group to the given roles. A caller holding a
// different role is sent back to their own dashboard with 303 See Other
// rather than a hard 403; authorization-shaped misses never reveal whether
// the resource exists.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if role == "" {
			c.Header("Location", LoginPath)
			c.AbortWithStatusJSON(http.StatusSeeOther,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if _, ok := allowed[identity.Role(role)]; !ok {
			c.Header("Location", DashboardPath(role))
			c.AbortWithStatusJSON(http.StatusSeeOther,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "This area is not available for your account"))
			return
		}

		c.Next()
	}
}
