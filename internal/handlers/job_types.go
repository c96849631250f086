package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type JobTypeHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJobTypeHandler(db *gorm.DB) *JobTypeHandler {
	return &JobTypeHandler{db: db, log: logger.New("JobTypeHandler")}
}

type CreateJobTypeRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateJobTypeRequest struct {
	JobTypeID uint   `json:"job_type_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
}

type JobTypeIDRequest struct {
	JobTypeID uint `json:"job_type_id" validate:"required"`
}

func (h *JobTypeHandler) GetAllJobTypes(c echo.Context) error {
	var jobTypes []models.JobType
	if err := h.db.Find(&jobTypes).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All JobTypes", jobTypes)
}

func (h *JobTypeHandler) GetJobTypeByID(c echo.Context) error {
	jobTypeID, ok := queryID(c, "job_type_id")
	if !ok {
		return requiredField(c, "job_type_id")
	}

	jobType := &models.JobType{}
	if err := h.db.First(jobType, jobTypeID).Error; err != nil {
		return invalidField(c, "job_type_id", "The selected job_type_id is invalid.")
	}
	return response.OK(c, "JobType details", jobType)
}

func (h *JobTypeHandler) CreateJobType(c echo.Context) error {
	var req CreateJobTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	jobType := models.JobType{Title: req.Title}
	if err := h.db.Create(&jobType).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "JobType created successfully", jobType)
}

func (h *JobTypeHandler) UpdateJobType(c echo.Context) error {
	var req UpdateJobTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var jobType models.JobType
	if err := h.db.First(&jobType, req.JobTypeID).Error; err != nil {
		return invalidField(c, "job_type_id", "The selected job_type_id is invalid.")
	}

	if err := h.db.Model(&jobType).Update("title", req.Title).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "JobType updated successfully", jobType)
}

func (h *JobTypeHandler) SoftDeleteJobType(c echo.Context) error {
	var req JobTypeIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var jobType models.JobType
	if err := h.db.First(&jobType, req.JobTypeID).Error; err != nil {
		return response.BadRequest(c, "JobType already deleted")
	}
	if err := h.db.Delete(&jobType).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "JobType deleted successfully", nil)
}

func (h *JobTypeHandler) RestoreJobType(c echo.Context) error {
	var req JobTypeIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var jobType models.JobType
	if err := models.WithTrashed(h.db).First(&jobType, req.JobTypeID).Error; err != nil {
		return invalidField(c, "job_type_id", "The selected job_type_id is invalid.")
	}
	if !jobType.IsTrashed() {
		return response.OK(c, "JobType already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&jobType).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "JobType restored successfully", nil)
}
