package handlers

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const jobsPerPage = 10

type JobHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{db: db, log: logger.New("JobHandler")}
}

type CreateJobRequest struct {
	Title             string `json:"title" validate:"required"`
	SalaryRange       string `json:"salary_range" validate:"required"`
	Requirements      string `json:"requirements" validate:"required"`
	Description       string `json:"description" validate:"required"`
	YearsOfExperience string `json:"years_of_experience" validate:"required,experience_years"`
	CategoryID        uint   `json:"category_id" validate:"required"`
	LocationID        uint   `json:"location_id" validate:"required"`
	JobTypeID         uint   `json:"job_type_id" validate:"required"`
}

type UpdateJobRequest struct {
	JobID uint `json:"job_id"`
	CreateJobRequest
}

type JobIDRequest struct {
	JobID uint `json:"job_id" validate:"required"`
}

type ApproveCompanyJobRequest struct {
	JobID       uint   `json:"job_id" validate:"required"`
	IsPublished string `json:"is_published" validate:"required,publish_status"`
}

type ApproveUserJobRequest struct {
	JobID  uint   `json:"job_id" validate:"required"`
	UserID uint   `json:"user_id" validate:"required"`
	Status string `json:"status" validate:"required,application_status"`
}

// GetAllJobs is the admin listing: every job regardless of publication
// state, ten per page.
func (h *JobHandler) GetAllJobs(c echo.Context) error {
	page := pageParam(c)

	var total int64
	if err := h.db.Model(&models.Job{}).Count(&total).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	var jobs []models.Job
	if err := h.db.Preload("Company.CompanyDetail").Preload("Category").
		Preload("Location").Preload("Type").
		Offset((page - 1) * jobsPerPage).Limit(jobsPerPage).
		Find(&jobs).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, "All Jobs", pagination{
		CurrentPage: page,
		PerPage:     jobsPerPage,
		Total:       total,
		Data:        jobs,
	})
}

// FilterJobs is the public search endpoint. Matches are restricted to
// accepted jobs; keyword searches title and description, city and
// category narrow by their reference entities.
func (h *JobHandler) FilterJobs(c echo.Context) error {
	query := h.db.Model(&models.Job{}).
		Where("is_published = ?", models.PublishAccepted).
		Preload("Company.CompanyDetail").Preload("Category").
		Preload("Location").Preload("Type")

	if keyword := c.QueryParam("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if city := c.QueryParam("city"); city != "" {
		var locations []models.Location
		if err := h.db.Where("city LIKE ?", "%"+city+"%").Find(&locations).Error; err == nil {
			ids := lo.Map(locations, func(l models.Location, _ int) uint { return l.ID })
			query = query.Where("location_id IN ?", ids)
		}
	}
	if category := c.QueryParam("category"); category != "" {
		var categories []models.Category
		if err := h.db.Where("name LIKE ?", "%"+category+"%").Find(&categories).Error; err == nil {
			ids := lo.Map(categories, func(cat models.Category, _ int) uint { return cat.ID })
			query = query.Where("category_id IN ?", ids)
		}
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	resources := lo.FilterMap(jobs, func(job models.Job, _ int) (map[string]interface{}, bool) {
		r := jobResource(&job)
		return r, r != nil
	})
	return response.OK(c, "Filtered Jobs", resources)
}

func (h *JobHandler) GetJobByID(c echo.Context) error {
	jobID, ok := queryID(c, "job_id")
	if !ok {
		return requiredField(c, "job_id")
	}

	job := &models.Job{}
	if err := h.db.Preload("Company.CompanyDetail").Preload("Category").
		Preload("Location").Preload("Type").First(job, jobID).Error; err != nil {
		return invalidField(c, "job_id", "The selected job_id is invalid.")
	}
	r := jobResource(job)
	if r == nil {
		// Keep the data slot out of the envelope for hidden jobs; a
		// typed nil map would serialise as "data": null.
		return response.OK(c, "Job details", nil)
	}
	return response.OK(c, "Job details", r)
}

// CreateJob forces the new job's company to the caller; a company
// cannot post on another company's behalf.
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	if handled, err := h.checkJobReferences(c, &req); handled {
		return err
	}

	user := middleware.CurrentUser(c)
	if !user.HasRole(models.RoleCompany) {
		return response.Unauthorized(c)
	}

	job := models.Job{
		Title:             req.Title,
		SalaryRange:       req.SalaryRange,
		Requirements:      req.Requirements,
		Description:       req.Description,
		YearsOfExperience: models.ExperienceYears(req.YearsOfExperience),
		IsPublished:       models.PublishPending,
		CategoryID:        req.CategoryID,
		CompanyID:         user.ID,
		LocationID:        req.LocationID,
		JobTypeID:         req.JobTypeID,
	}
	if err := h.db.Create(&job).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	h.log.Success("Job %d created by company %d", job.ID, user.ID)
	return response.OK(c, "Job created successfully", nil)
}

func (h *JobHandler) UpdateJob(c echo.Context) error {
	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if req.JobID == 0 {
		return response.BadRequest(c, "The job_id field is required")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	if handled, err := h.checkJobReferences(c, &req.CreateJobRequest); handled {
		return err
	}

	user := middleware.CurrentUser(c)

	// Ownership failure is an explicit Unauthorized, never not-found.
	var job models.Job
	if err := h.db.Where("id = ? AND company_id = ?", req.JobID, user.ID).
		First(&job).Error; err != nil {
		return response.Unauthorized(c)
	}

	if err := h.db.Model(&job).Updates(map[string]interface{}{
		"title":               req.Title,
		"salary_range":        req.SalaryRange,
		"requirements":        req.Requirements,
		"description":         req.Description,
		"years_of_experience": req.YearsOfExperience,
		"category_id":         req.CategoryID,
		"location_id":         req.LocationID,
		"job_type_id":         req.JobTypeID,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Job updated successfully", nil)
}

func (h *JobHandler) SoftDeleteJob(c echo.Context) error {
	var req JobIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)

	var job models.Job
	if err := h.db.Where("id = ? AND company_id = ?", req.JobID, user.ID).
		First(&job).Error; err != nil {
		return response.Unauthorized(c)
	}

	if err := h.db.Delete(&job).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Job deleted successfully", nil)
}

func (h *JobHandler) RestoreJob(c echo.Context) error {
	var req JobIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)

	var job models.Job
	if err := models.WithTrashed(h.db).
		Where("id = ? AND company_id = ?", req.JobID, user.ID).
		First(&job).Error; err != nil {
		return response.Unauthorized(c)
	}

	if !job.IsTrashed() {
		return response.OK(c, "Job already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&job).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Job restored successfully", nil)
}

// UserApplyJob records the caller's application. The target must be an
// accepted job and a resume must come from the upload or the caller's
// stored profile. Re-applying overwrites the existing row.
func (h *JobHandler) UserApplyJob(c echo.Context) error {
	jobID, err := strconv.ParseUint(c.FormValue("job_id"), 10, 64)
	if err != nil || jobID == 0 {
		return requiredField(c, "job_id")
	}

	var job models.Job
	if err := h.db.First(&job, jobID).Error; err != nil {
		return invalidField(c, "job_id", "The selected job_id is invalid.")
	}
	if job.IsPublished != models.PublishAccepted {
		return invalidField(c, "job_id", "This job is not published yet")
	}

	user := middleware.CurrentUser(c)

	var detail models.UserDetail
	storedResume := ""
	if err := h.db.Where("user_id = ?", user.ID).First(&detail).Error; err == nil {
		storedResume = detail.Resume
	}

	fileData, fileHeader, err := readUpload(c, "resume")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if fileData == nil && storedResume == "" {
		return response.BadRequest(c, "The resume field is required.")
	}

	resume := storedResume
	if fileData != nil {
		if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
			return invalidField(c, "resume", "The resume must be a file of type: pdf.")
		}
		uploaded, err := services.GetStorage().UploadFile(c.Request().Context(),
			fileData, fileHeader.Filename, types.ObjectCannedACLPrivate, "application/pdf")
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		resume = uploaded
	}

	application := models.JobApplication{
		UserID: user.ID,
		JobID:  uint(jobID),
		Resume: resume,
		Status: models.ApplicationPending,
	}
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"resume", "updated_at"}),
	}).Create(&application).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, "Done", nil)
}

// GetUserJobs lists the caller's applications with each job's nested
// projections and the application's status and resume.
func (h *JobHandler) GetUserJobs(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var applications []models.JobApplication
	if err := h.db.Where("user_id = ?", user.ID).
		Preload("Job.Company.CompanyDetail").Preload("Job.Category").
		Preload("Job.Location").Preload("Job.Type").
		Find(&applications).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	storage := services.GetStorage()
	resources := lo.FilterMap(applications, func(app models.JobApplication, _ int) (map[string]interface{}, bool) {
		r := jobAppliedResource(app.Job, &app)
		if r == nil {
			return nil, false
		}
		if storage != nil && app.Resume != "" {
			if signed, err := storage.GetSignedURL(c.Request().Context(), app.Resume, time.Hour); err == nil {
				r["resume"] = signed
			}
		}
		return r, true
	})
	return response.OK(c, "All User Jobs", resources)
}

// ApproveCompanyJob is the admin publication switch: any holder of the
// permission may move any job to any of the four states.
func (h *JobHandler) ApproveCompanyJob(c echo.Context) error {
	var req ApproveCompanyJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var job models.Job
	if err := h.db.First(&job, req.JobID).Error; err != nil {
		return invalidField(c, "job_id", "The selected job_id is invalid.")
	}

	if err := h.db.Model(&job).Update("is_published", req.IsPublished).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Company Job updated successfully", nil)
}

// ApproveUserJob lets the job's owning company set an applicant's
// status. Only the status field of the pivot row changes; the resume
// stays as applied.
func (h *JobHandler) ApproveUserJob(c echo.Context) error {
	var req ApproveUserJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	company := middleware.CurrentUser(c)

	var job models.Job
	if err := h.db.Where("id = ? AND company_id = ?", req.JobID, company.ID).
		First(&job).Error; err != nil {
		return response.Unauthorized(c)
	}

	result := h.db.Model(&models.JobApplication{}).
		Where("user_id = ? AND job_id = ?", req.UserID, req.JobID).
		Updates(map[string]interface{}{"status": req.Status, "updated_at": time.Now()})
	if result.Error != nil {
		return response.BadRequest(c, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return invalidField(c, "user_id", "The selected user_id is invalid.")
	}
	return response.OK(c, "User Job updated successfully", nil)
}

// checkJobReferences verifies the reference entities a job points at
// actually exist. handled is true when a validation response has
// already been written.
func (h *JobHandler) checkJobReferences(c echo.Context, req *CreateJobRequest) (bool, error) {
	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		return true, invalidField(c, "category_id", "The selected category_id is invalid.")
	}
	var location models.Location
	if err := h.db.First(&location, req.LocationID).Error; err != nil {
		return true, invalidField(c, "location_id", "The selected location_id is invalid.")
	}
	var jobType models.JobType
	if err := h.db.First(&jobType, req.JobTypeID).Error; err != nil {
		return true, invalidField(c, "job_type_id", "The selected job_type_id is invalid.")
	}
	return false, nil
}
