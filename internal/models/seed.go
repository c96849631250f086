package models

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	console "jobboard/internal/utils/logger"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

var log = console.New("SEEDER")

// The closed capability set. Handlers are gated on these titles only.
var defaultPermissions = []string{
	"admins-read", "admins-create", "admins-update", "admins-delete",
	"users-read", "users-create", "users-update", "users-delete",
	"companies-read", "companies-create", "companies-update", "companies-delete",
	"jobs-read", "jobs-create", "jobs-update", "jobs-delete", "admin-jobs-read",
	"categories-read", "categories-create", "categories-update", "categories-delete",
	"locations-read", "locations-create", "locations-update", "locations-delete",
	"jobTypes-read", "jobTypes-create", "jobTypes-update", "jobTypes-delete",
	"permissions-read", "permissions-create", "permissions-update", "permissions-delete",
	"roles-read", "roles-create", "roles-update", "roles-delete",
	"profile-read", "profile-create", "profile-update", "profile-delete",
	"approve-user", "approve-company",
}

// Default permission sets per role. super-admin receives every
// permission; the others get working subsets so a fresh install is
// usable without manual role wiring.
var rolePermissions = map[string][]string{
	RoleAdmin: {
		"admins-read", "admins-create", "admins-update", "admins-delete",
		"users-read", "users-create", "users-update", "users-delete",
		"companies-read", "companies-create", "companies-update", "companies-delete",
		"categories-read", "categories-create", "categories-update", "categories-delete",
		"locations-read", "locations-create", "locations-update", "locations-delete",
		"jobTypes-read", "jobTypes-create", "jobTypes-update", "jobTypes-delete",
		"permissions-read", "permissions-create", "permissions-update", "permissions-delete",
		"roles-read", "roles-create", "roles-update", "roles-delete",
		"admin-jobs-read", "approve-company",
	},
	RoleCompany: {
		"companies-read", "companies-update",
		"jobs-read", "jobs-create", "jobs-update", "jobs-delete",
		"approve-user",
	},
	RoleUser: {
		// profile-* covers the caller's own details, skills,
		// educations and experiences. users-* stays with staff roles
		// so a registrant cannot touch other accounts.
		"profile-read", "profile-create", "profile-update", "profile-delete",
		"jobs-read",
	},
}

// SeedPermissions creates the capability registry and the four base
// roles with their default permission sets. Idempotent.
func SeedPermissions(db *gorm.DB) error {
	for _, title := range defaultPermissions {
		permission := Permission{Title: title}
		if err := db.FirstOrCreate(&permission, Permission{Title: title}).Error; err != nil {
			return fmt.Errorf("failed to create permission %s: %w", title, err)
		}
	}

	var all []Permission
	if err := db.Find(&all).Error; err != nil {
		return fmt.Errorf("failed to load permissions: %w", err)
	}
	byTitle := lo.KeyBy(all, func(p Permission) string { return p.Title })

	for _, name := range []string{RoleSuperAdmin, RoleAdmin, RoleCompany, RoleUser} {
		role := Role{Name: name}
		if err := db.FirstOrCreate(&role, Role{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}

		var grant []Permission
		if name == RoleSuperAdmin {
			grant = all
		} else {
			grant = lo.FilterMap(rolePermissions[name], func(title string, _ int) (Permission, bool) {
				p, ok := byTitle[title]
				return p, ok
			})
		}

		if err := db.Model(&role).Association("Permissions").Replace(grant); err != nil {
			return fmt.Errorf("failed to assign permissions to role %s: %w", name, err)
		}
		log.Info("Seeded role %s with %d permissions", name, len(grant))
	}

	return nil
}

// CreateSuperAdminFromEnv creates the bootstrap super-admin account if
// no user holds the super-admin role yet.
func CreateSuperAdminFromEnv(db *gorm.DB) error {
	var role Role
	if err := db.Where("name = ?", RoleSuperAdmin).First(&role).Error; err != nil {
		return fmt.Errorf("super-admin role not seeded: %w", err)
	}

	var count int64
	db.Model(&User{}).Where("role_id = ?", role.ID).Count(&count)
	if count > 0 {
		return nil
	}

	email, ok := os.LookupEnv("SUPERADMIN_EMAIL")
	if !ok {
		return fmt.Errorf("SUPERADMIN_EMAIL not set")
	}
	password, ok := os.LookupEnv("SUPERADMIN_PASSWORD")
	if !ok {
		return fmt.Errorf("SUPERADMIN_PASSWORD not set")
	}
	name, ok := os.LookupEnv("SUPERADMIN_NAME")
	if !ok {
		name = "super admin"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create super-admin user: %w", err)
	}

	return nil
}
