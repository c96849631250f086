package models

import (
	"time"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Soft-deleted rows are
// excluded from default queries; restore clears DeletedAt via Unscoped.
type Base struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsTrashed reports whether the row is currently soft-deleted.
func (b *Base) IsTrashed() bool {
	return b.DeletedAt.Valid
}

// PublishStatus is the admin-controlled publication state of a Job.
// The transition function is unrestricted: approval may move a job
// between any of the four states at any time.
type PublishStatus string

const (
	PublishPending     PublishStatus = "pending"
	PublishRejected    PublishStatus = "rejected"
	PublishUnderReview PublishStatus = "under review"
	PublishAccepted    PublishStatus = "accepted"
)

// ApplicationStatus is the company-controlled state of a user's
// application to one job.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationUnderReview ApplicationStatus = "under review"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

// ExperienceYears is the closed experience bracket set shared by jobs
// and skills.
type ExperienceYears string

const (
	ExperienceLessThanOne   ExperienceYears = "less than 1 year"
	ExperienceOneToThree    ExperienceYears = "1-3 years"
	ExperienceThreeToFive   ExperienceYears = "3-5 years"
	ExperienceFiveToSeven   ExperienceYears = "5-7 years"
	ExperienceMoreThanSeven ExperienceYears = "more than 7 years"
)

// Role names with meaning recognized across the API.
const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "Admin"
	RoleCompany    = "Company"
	RoleUser       = "User"
)

func IsValidPublishStatus(s PublishStatus) bool {
	switch s {
	case PublishPending, PublishRejected, PublishUnderReview, PublishAccepted:
		return true
	default:
		return false
	}
}

func IsValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationRejected, ApplicationUnderReview, ApplicationAccepted:
		return true
	default:
		return false
	}
}

// WithTrashed widens a query to include soft-deleted rows.
func WithTrashed(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
