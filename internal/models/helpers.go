package models

import (
	"gorm.io/gorm"
)

// GetRoleByName retrieves a role by its unique name.
func GetRoleByName(db *gorm.DB, name string) (*Role, error) {
	role := &Role{}
	if err := db.Where("name = ?", name).First(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}

// GetUserWithRole loads a user together with its role and the role's
// permission set, the shape the authorization gate works on.
func GetUserWithRole(db *gorm.DB, id uint) (*User, error) {
	user := &User{}
	if err := db.Preload("Role.Permissions").First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserInRole fetches the user only when it exists and carries the
// named role; callers use this for the "this is not an admin/user"
// style checks.
func GetUserInRole(db *gorm.DB, id uint, roleName string) (*User, error) {
	role, err := GetRoleByName(db, roleName)
	if err != nil {
		return nil, err
	}
	user := &User{}
	if err := db.Where("id = ? AND role_id = ?", id, role.ID).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
