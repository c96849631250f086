package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"jobboard/internal/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededPermissionIDs(t *testing.T, h *RoleHandler, count int) []uint {
	t.Helper()

	var permissions []models.Permission
	require.NoError(t, h.db.Order("id ASC").Limit(count).Find(&permissions).Error)
	require.Len(t, permissions, count)
	return lo.Map(permissions, func(p models.Permission, _ int) uint { return p.ID })
}

func rolePermissionIDs(t *testing.T, h *RoleHandler, roleID uint) []uint {
	t.Helper()

	var role models.Role
	require.NoError(t, h.db.Preload("Permissions").First(&role, roleID).Error)
	return lo.Map(role.Permissions, func(p models.Permission, _ int) uint { return p.ID })
}

func TestCreateRoleAttachesPermissions(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	ids := seededPermissionIDs(t, h, 3)

	body := fmt.Sprintf(`{"name":"moderator","permissions":[%d,%d,%d]}`, ids[0], ids[1], ids[2])
	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/create", body, nil)
	require.NoError(t, h.CreateRole(c))

	env := decodeEnvelope(t, rec)
	require.Equal(t, 200, env.Status, "errors: %s", env.Errors)
	assert.Equal(t, "Role created successfully", env.Message)

	var role models.Role
	require.NoError(t, db.Where("name = ?", "moderator").First(&role).Error)
	assert.ElementsMatch(t, ids, rolePermissionIDs(t, h, role.ID))
}

func TestUpdateRoleReplacesPermissionSet(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	ids := seededPermissionIDs(t, h, 4)

	role := models.Role{Name: "moderator"}
	require.NoError(t, db.Create(&role).Error)
	var initial []models.Permission
	require.NoError(t, db.Where("id IN ?", ids[:3]).Find(&initial).Error)
	require.NoError(t, db.Model(&role).Association("Permissions").Replace(initial))

	body := fmt.Sprintf(`{"role_id":%d,"name":"moderator","permissions":[%d,%d]}`,
		role.ID, ids[1], ids[3])
	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/update", body, nil)
	require.NoError(t, h.UpdateRole(c))

	env := decodeEnvelope(t, rec)
	require.Equal(t, 200, env.Status, "errors: %s", env.Errors)

	// The set is replaced wholesale: unlisted permissions are detached.
	assert.ElementsMatch(t, []uint{ids[1], ids[3]}, rolePermissionIDs(t, h, role.ID))
}

func TestCreateRoleRejectsUnknownPermissionID(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	ids := seededPermissionIDs(t, h, 1)

	body := fmt.Sprintf(`{"name":"moderator","permissions":[%d,99999]}`, ids[0])
	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/create", body, nil)
	require.NoError(t, h.CreateRole(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Contains(t, string(env.Errors), "Invalid Permission Id.")

	var count int64
	require.NoError(t, db.Model(&models.Role{}).Where("name = ?", "moderator").Count(&count).Error)
	assert.Zero(t, count, "role must not be created when any id is invalid")
}

func TestCreateRoleRejectsDuplicatePermissionIDs(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	ids := seededPermissionIDs(t, h, 1)

	body := fmt.Sprintf(`{"name":"moderator","permissions":[%d,%d]}`, ids[0], ids[0])
	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/create", body, nil)
	require.NoError(t, h.CreateRole(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Contains(t, string(env.Errors), "This Permission is Exist")
}

func TestCreateRoleRejectsTakenName(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	ids := seededPermissionIDs(t, h, 1)

	body := fmt.Sprintf(`{"name":%q,"permissions":[%d]}`, models.RoleAdmin, ids[0])
	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/create", body, nil)
	require.NoError(t, h.CreateRole(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Contains(t, string(env.Errors), "The name has already been taken.")
}

func TestSoftDeleteRoleTwiceReportsAlreadyDeleted(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	role := models.Role{Name: "moderator"}
	require.NoError(t, db.Create(&role).Error)

	body := fmt.Sprintf(`{"role_id":%d}`, role.ID)

	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/delete", body, nil)
	require.NoError(t, h.SoftDeleteRole(c))
	assert.Equal(t, "Role deleted successfully", decodeEnvelope(t, rec).Message)

	c, rec = jsonRequest(e, http.MethodPost, "/api/roles/delete", body, nil)
	require.NoError(t, h.SoftDeleteRole(c))
	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, "Role already deleted", env.Message)
}

func TestRestoreRoleBringsItBack(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewRoleHandler(db)

	role := models.Role{Name: "moderator"}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Delete(&role).Error)

	body := fmt.Sprintf(`{"role_id":%d}`, role.ID)

	c, rec := jsonRequest(e, http.MethodPost, "/api/roles/restore", body, nil)
	require.NoError(t, h.RestoreRole(c))
	assert.Equal(t, "Role restored successfully", decodeEnvelope(t, rec).Message)

	var restored models.Role
	require.NoError(t, db.First(&restored, role.ID).Error)

	c, rec = jsonRequest(e, http.MethodPost, "/api/roles/restore", body, nil)
	require.NoError(t, h.RestoreRole(c))
	assert.Equal(t, "Role already restored", decodeEnvelope(t, rec).Message)
}
