package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/api/response"
	"jobboard/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, user *models.User) (passed bool, env response.Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		SetCurrentUser(c, user)
	}

	handler := mw(func(c echo.Context) error {
		passed = true
		return response.OK(c, "ok", nil)
	})
	require.NoError(t, handler(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return passed, env
}

func userWithPermissions(roleName string, titles ...string) *models.User {
	role := &models.Role{Name: roleName}
	for _, title := range titles {
		role.Permissions = append(role.Permissions, models.Permission{Title: title})
	}
	return &models.User{Name: "Gate Tester", Email: "gate@example.com", Role: role}
}

func TestRequirePermissionsGrantsOnAnyMatch(t *testing.T) {
	user := userWithPermissions(models.RoleAdmin, "users-read")

	// The caller lacks the first listed permission but holds the
	// second; any match is enough.
	passed, env := runGate(t, RequirePermissions("users-create", "users-read"), user)
	assert.True(t, passed)
	assert.Equal(t, 200, env.Status)
}

func TestRequirePermissionsDeniesWithoutAnyMatch(t *testing.T) {
	user := userWithPermissions(models.RoleAdmin, "users-read")

	passed, env := runGate(t, RequirePermissions("jobs-create", "jobs-update"), user)
	assert.False(t, passed)
	assert.Equal(t, 401, env.Status)
	assert.Equal(t, "Don't have permission", env.Message)
}

func TestRequirePermissionsDeniesMissingUserOrRole(t *testing.T) {
	passed, env := runGate(t, RequirePermissions("users-read"), nil)
	assert.False(t, passed)
	assert.Equal(t, 401, env.Status)

	roleless := &models.User{Name: "No Role", Email: "noone@example.com"}
	passed, env = runGate(t, RequirePermissions("users-read"), roleless)
	assert.False(t, passed)
	assert.Equal(t, 401, env.Status)
}

func TestRequireRolesMatchesAnyListedRole(t *testing.T) {
	user := userWithPermissions(models.RoleCompany)

	passed, _ := runGate(t, RequireRoles(models.RoleAdmin, models.RoleCompany), user)
	assert.True(t, passed)

	passed, env := runGate(t, RequireRoles(models.RoleAdmin, models.RoleSuperAdmin), user)
	assert.False(t, passed)
	assert.Equal(t, "Don't have permission", env.Message)
}
