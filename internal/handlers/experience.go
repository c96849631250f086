package handlers

import (
	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ExperienceHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{db: db, log: logger.New("ExperienceHandler")}
}

type CreateExperienceRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	CompanyName string `json:"company_name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
}

type UpdateExperienceRequest struct {
	ExperienceID uint `json:"experience_id" validate:"required"`
	CreateExperienceRequest
}

type ExperienceIDRequest struct {
	ExperienceID uint `json:"experience_id" validate:"required"`
}

func (h *ExperienceHandler) GetUserExperiences(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var experiences []models.Experience
	if err := h.db.Where("user_id = ?", user.ID).Find(&experiences).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "User experiences", experiences)
}

func (h *ExperienceHandler) CreateUserExperience(c echo.Context) error {
	var req CreateExperienceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	experience := models.Experience{
		UserID:      user.ID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := h.db.Create(&experience).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Experience created successfully", nil)
}

func (h *ExperienceHandler) UpdateUserExperience(c echo.Context) error {
	var req UpdateExperienceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	var experience models.Experience
	if err := h.db.Where("id = ? AND user_id = ?", req.ExperienceID, user.ID).
		First(&experience).Error; err != nil {
		return invalidField(c, "experience_id", "The selected experience_id is invalid.")
	}

	if err := h.db.Model(&experience).Updates(map[string]interface{}{
		"title":        req.Title,
		"company_name": req.CompanyName,
		"description":  req.Description,
		"start_date":   req.StartDate,
		"end_date":     req.EndDate,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Experience updated successfully", nil)
}

func (h *ExperienceHandler) DeleteUserExperience(c echo.Context) error {
	var req ExperienceIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	var experience models.Experience
	if err := h.db.Where("id = ? AND user_id = ?", req.ExperienceID, user.ID).
		First(&experience).Error; err != nil {
		return response.BadRequest(c, "Experience already deleted")
	}
	if err := h.db.Delete(&experience).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Experience deleted successfully", nil)
}
