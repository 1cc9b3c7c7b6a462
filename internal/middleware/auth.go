package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/services"
)

const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
	AdminRoleKey  = "admin_role"
)

func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)
		c.Set(AdminRoleKey, claims.Role)

		c.Next()
	}
}

// SuperAdmin wraps a handler so only superadmins reach it. Used on the
// destructive endpoints.
func SuperAdmin(next drift.HandlerFunc) drift.HandlerFunc {
	return func(c *drift.Context) {
		if GetAdminRole(c) != models.RoleSuperAdmin {
			c.Forbidden("superadmin role required")
			return
		}
		next(c)
	}
}

func GetAdminID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(AdminIDKey); ok {
		if aid, ok := id.(uuid.UUID); ok {
			return aid
		}
	}
	return uuid.Nil
}

func GetAdminEmail(c *drift.Context) string {
	if email, ok := c.Get(AdminEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

func GetAdminRole(c *drift.Context) string {
	if role, ok := c.Get(AdminRoleKey); ok {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
