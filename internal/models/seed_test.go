package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Permission{}, &Role{}, &Category{}, &Location{}, &JobType{}, &Skill{},
		&User{}, &AuthToken{}, &UserDetail{}, &CompanyDetail{},
		&Education{}, &Experience{}, &Job{}, &JobApplication{},
	))
	require.NoError(t, SeedPermissions(db))
	return db
}

func TestSeedPermissionsCreatesRegistryAndRoles(t *testing.T) {
	db := openSeededDB(t)

	var permissionCount int64
	require.NoError(t, db.Model(&Permission{}).Count(&permissionCount).Error)
	assert.EqualValues(t, len(defaultPermissions), permissionCount)

	for _, name := range []string{RoleSuperAdmin, RoleAdmin, RoleCompany, RoleUser} {
		role, err := GetRoleByName(db, name)
		require.NoError(t, err)
		assert.Equal(t, name, role.Name)
	}
}

func TestSeedPermissionsGrantsEverythingToSuperAdmin(t *testing.T) {
	db := openSeededDB(t)

	var role Role
	require.NoError(t, db.Preload("Permissions").
		Where("name = ?", RoleSuperAdmin).First(&role).Error)
	assert.Len(t, role.Permissions, len(defaultPermissions))

	for _, title := range defaultPermissions {
		assert.True(t, role.HasPermission(title), "super-admin missing %s", title)
	}
}

func TestSeedPermissionsIsIdempotent(t *testing.T) {
	db := openSeededDB(t)
	require.NoError(t, SeedPermissions(db))
	require.NoError(t, SeedPermissions(db))

	var permissionCount, roleCount int64
	require.NoError(t, db.Model(&Permission{}).Count(&permissionCount).Error)
	require.NoError(t, db.Model(&Role{}).Count(&roleCount).Error)
	assert.EqualValues(t, len(defaultPermissions), permissionCount)
	assert.EqualValues(t, 4, roleCount)
}

func TestUserRoleIsScopedToOwnProfile(t *testing.T) {
	db := openSeededDB(t)

	var role Role
	require.NoError(t, db.Preload("Permissions").
		Where("name = ?", RoleUser).First(&role).Error)

	for _, title := range []string{"profile-read", "profile-create", "profile-update", "profile-delete", "jobs-read"} {
		assert.True(t, role.HasPermission(title), "user role missing %s", title)
	}

	// Account administration stays with staff roles.
	for _, title := range []string{"users-read", "users-create", "users-update", "users-delete"} {
		assert.False(t, role.HasPermission(title), "user role must not hold %s", title)
	}
}

func TestRoleHasAnyPermission(t *testing.T) {
	db := openSeededDB(t)

	var role Role
	require.NoError(t, db.Preload("Permissions").
		Where("name = ?", RoleUser).First(&role).Error)

	assert.True(t, role.HasAnyPermission("jobs-read"))
	assert.True(t, role.HasAnyPermission("jobs-create", "jobs-read"),
		"one held permission out of the list is enough")
	assert.False(t, role.HasAnyPermission("admins-read", "roles-create"))
	assert.False(t, role.HasAnyPermission())
}
