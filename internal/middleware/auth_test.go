package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/internal/services"
)

func newTestJWTService() *services.JWTService {
	return services.NewJWTService("test-secret-key", 15*time.Minute, 24*time.Hour)
}

func generateTestToken(t *testing.T, jwtSvc *services.JWTService, adminID uuid.UUID, email, role string) string {
	t.Helper()
	pair, err := jwtSvc.GenerateTokenPair(adminID, email, role)
	require.NoError(t, err)
	return pair.AccessToken
}

func TestAuth_MissingAuthorizationHeader(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing authorization header")
}

func TestAuth_InvalidAuthorizationFormat_NoBearer(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token some-token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid authorization header format")
}

func TestAuth_InvalidToken(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	jwtSvc := services.NewJWTService("test-secret-key", 1*time.Millisecond, 24*time.Hour)
	app := drift.New()

	adminID := uuid.New()
	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)

	time.Sleep(10 * time.Millisecond)

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuth_WrongSecret(t *testing.T) {
	jwtSvc1 := services.NewJWTService("secret-1", 15*time.Minute, 24*time.Hour)
	jwtSvc2 := services.NewJWTService("secret-2", 15*time.Minute, 24*time.Hour)
	app := drift.New()

	adminID := uuid.New()
	token := generateTestToken(t, jwtSvc1, adminID, "admin@example.com", models.RoleAdmin)

	app.Use(Auth(jwtSvc2))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	adminID := uuid.New()
	email := "admin@example.com"
	token := generateTestToken(t, jwtSvc, adminID, email, models.RoleSuperAdmin)

	var extractedAdminID uuid.UUID
	var extractedEmail string
	var extractedRole string

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		extractedAdminID = GetAdminID(c)
		extractedEmail = GetAdminEmail(c)
		extractedRole = GetAdminRole(c)
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminID, extractedAdminID)
	assert.Equal(t, email, extractedEmail)
	assert.Equal(t, models.RoleSuperAdmin, extractedRole)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	adminID := uuid.New()
	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)

	app.Use(Auth(jwtSvc))
	app.Get("/protected", func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	testCases := []string{"bearer", "BEARER", "BeArEr"}

	for _, bearer := range testCases {
		t.Run(bearer, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", bearer+" "+token)
			rec := httptest.NewRecorder()

			app.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestSuperAdmin_AllowsSuperAdmin(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	adminID := uuid.New()
	token := generateTestToken(t, jwtSvc, adminID, "boss@example.com", models.RoleSuperAdmin)

	app.Use(Auth(jwtSvc))
	app.Delete("/dangerous", SuperAdmin(func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "done"})
	}))

	req := httptest.NewRequest(http.MethodDelete, "/dangerous", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuperAdmin_RejectsRegularAdmin(t *testing.T) {
	jwtSvc := newTestJWTService()
	app := drift.New()

	adminID := uuid.New()
	token := generateTestToken(t, jwtSvc, adminID, "admin@example.com", models.RoleAdmin)

	app.Use(Auth(jwtSvc))
	app.Delete("/dangerous", SuperAdmin(func(c *drift.Context) {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "done"})
	}))

	req := httptest.NewRequest(http.MethodDelete, "/dangerous", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "superadmin role required")
}

func TestGetAdminID_NotSet(t *testing.T) {
	app := drift.New()

	var extractedAdminID uuid.UUID

	app.Get("/test", func(c *drift.Context) {
		extractedAdminID = GetAdminID(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, uuid.Nil, extractedAdminID)
}

func TestGetAdminRole_NotSet(t *testing.T) {
	app := drift.New()

	var extractedRole string

	app.Get("/test", func(c *drift.Context) {
		extractedRole = GetAdminRole(c)
		_ = c.JSON(http.StatusOK, nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, "", extractedRole)
}
