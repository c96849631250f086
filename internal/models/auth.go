package models

import (
	"time"

	"github.com/samber/lo"
)

type Permission struct {
	Base
	Title string `gorm:"uniqueIndex;not null" json:"title" validate:"required"`
}

type Role struct {
	Base
	Name        string       `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Permissions []Permission `gorm:"many2many:roles_permissions" json:"permissions,omitempty"`
}

// HasPermission reports whether the role's permission set contains the
// named capability.
func (r *Role) HasPermission(title string) bool {
	if r == nil {
		return false
	}
	return lo.ContainsBy(r.Permissions, func(p Permission) bool {
		return p.Title == title
	})
}

// HasAnyPermission is the gate predicate: true when the role holds at
// least one of the listed capabilities. Every element is checked.
func (r *Role) HasAnyPermission(titles ...string) bool {
	for _, title := range titles {
		if r.HasPermission(title) {
			return true
		}
	}
	return false
}

type User struct {
	Base
	Name     string `gorm:"not null" json:"name" validate:"required"`
	Email    string `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"not null" json:"-"`
	RoleID   uint   `gorm:"not null" json:"-"`
	Role     *Role  `json:"role,omitempty"`

	Detail        *UserDetail    `gorm:"foreignKey:UserID" json:"user_detail,omitempty"`
	CompanyDetail *CompanyDetail `gorm:"foreignKey:CompanyID" json:"company_detail,omitempty"`
	Experiences   []Experience   `gorm:"foreignKey:UserID" json:"experiences,omitempty"`
	Educations    []Education    `gorm:"foreignKey:UserID" json:"educations,omitempty"`
	Skills        []Skill        `gorm:"many2many:user_skill" json:"skills,omitempty"`

	Applications []JobApplication `gorm:"foreignKey:UserID" json:"-"`
}

// HasRole reports whether the user's role carries the given name.
func (u *User) HasRole(name string) bool {
	return u.Role != nil && u.Role.Name == name
}

// AuthToken is a persisted bearer token. Logout deletes the row, which
// revokes the token even before its JWT expiry.
type AuthToken struct {
	Base
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `json:"user,omitempty"`
	Token     string    `gorm:"not null;index" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
