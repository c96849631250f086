package models

import "time"

type Category struct {
	Base
	Name     string    `gorm:"not null" json:"name" validate:"required"`
	ParentID *uint     `json:"-"`
	Parent   *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Jobs     []Job     `gorm:"foreignKey:CategoryID" json:"jobs,omitempty"`
}

type Location struct {
	Base
	Country string `gorm:"not null" json:"country" validate:"required"`
	City    string `gorm:"not null" json:"city" validate:"required"`
}

type JobType struct {
	Base
	Title string `gorm:"not null" json:"title" validate:"required"`
}

type Job struct {
	Base
	Title             string          `gorm:"not null" json:"title"`
	SalaryRange       string          `gorm:"not null" json:"salary_range"`
	Requirements      string          `gorm:"type:text;not null" json:"requirements"`
	Description       string          `gorm:"type:text;not null" json:"description"`
	YearsOfExperience ExperienceYears `gorm:"not null" json:"years_of_experience"`
	IsPublished       PublishStatus   `gorm:"not null;default:'pending'" json:"is_published"`

	CategoryID uint      `gorm:"not null" json:"-"`
	Category   *Category `json:"category,omitempty"`
	CompanyID  uint      `gorm:"not null" json:"-"`
	Company    *User     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	LocationID uint      `gorm:"not null" json:"-"`
	Location   *Location `json:"location,omitempty"`
	JobTypeID  uint      `gorm:"not null" json:"-"`
	Type       *JobType  `gorm:"foreignKey:JobTypeID" json:"type,omitempty"`

	Applications []JobApplication `gorm:"foreignKey:JobID" json:"-"`
}

// JobApplication is the User×Job pivot. The (user_id, job_id) pair is
// the primary key, so re-applying upserts instead of duplicating.
type JobApplication struct {
	UserID    uint              `gorm:"primaryKey" json:"user_id"`
	User      *User             `json:"-"`
	JobID     uint              `gorm:"primaryKey" json:"job_id"`
	Job       *Job              `json:"-"`
	Resume    string            `json:"resume"`
	Status    ApplicationStatus `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt time.Time         `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

func (JobApplication) TableName() string { return "job_applicants" }

// Skill rows are shared: attaching does not copy, so an update through
// any holder is visible to every attached user.
type Skill struct {
	Base
	Name              string          `gorm:"not null" json:"name" validate:"required,max=255"`
	YearsOfExperience ExperienceYears `gorm:"not null" json:"years_of_experience"`
	Justification     string          `gorm:"type:text;not null" json:"justification" validate:"required"`
	Users             []User          `gorm:"many2many:user_skill" json:"-"`
}

type UserDetail struct {
	Base
	UserID         uint   `gorm:"uniqueIndex;not null" json:"-"`
	Gender         string `gorm:"not null" json:"gender"`
	MaritalStatus  string `gorm:"not null" json:"marital_status"`
	MilitaryStatus string `gorm:"not null" json:"military_status"`
	Nationality    string `gorm:"not null" json:"nationality"`
	Resume         string `json:"resume"`
}

type CompanyDetail struct {
	Base
	CompanyID   uint   `gorm:"uniqueIndex;not null" json:"-"`
	Site        string `gorm:"not null" json:"site"`
	Logo        string `json:"logo"`
	Description string `gorm:"type:text" json:"description"`
	Size        string `json:"size"`
	JobNumbers  string `json:"job_numbers"`
}

type Education struct {
	Base
	UserID     uint   `gorm:"not null;index" json:"-"`
	University string `gorm:"not null" json:"university"`
	StartDate  string `gorm:"not null" json:"start_date"`
	EndDate    string `gorm:"not null" json:"end_date"`
}

type Experience struct {
	Base
	UserID      uint   `gorm:"not null;index" json:"-"`
	Title       string `gorm:"not null" json:"title"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Description string `gorm:"type:text;not null" json:"description"`
	StartDate   string `gorm:"not null" json:"start_date"`
	EndDate     string `gorm:"not null" json:"end_date"`
}
