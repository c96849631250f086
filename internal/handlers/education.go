package handlers

import (
	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type EducationHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEducationHandler(db *gorm.DB) *EducationHandler {
	return &EducationHandler{db: db, log: logger.New("EducationHandler")}
}

type CreateEducationRequest struct {
	University string `json:"university" validate:"required,max=255"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

type UpdateEducationRequest struct {
	EducationID uint `json:"education_id" validate:"required"`
	CreateEducationRequest
}

type EducationIDRequest struct {
	EducationID uint `json:"education_id" validate:"required"`
}

func (h *EducationHandler) GetUserEducations(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var educations []models.Education
	if err := h.db.Where("user_id = ?", user.ID).Find(&educations).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "User educations", educations)
}

func (h *EducationHandler) CreateUserEducation(c echo.Context) error {
	var req CreateEducationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	education := models.Education{
		UserID:     user.ID,
		University: req.University,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if err := h.db.Create(&education).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Education created successfully", nil)
}

func (h *EducationHandler) UpdateUserEducation(c echo.Context) error {
	var req UpdateEducationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	var education models.Education
	if err := h.db.Where("id = ? AND user_id = ?", req.EducationID, user.ID).
		First(&education).Error; err != nil {
		return invalidField(c, "education_id", "The selected education_id is invalid.")
	}

	if err := h.db.Model(&education).Updates(map[string]interface{}{
		"university": req.University,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Education updated successfully", nil)
}

func (h *EducationHandler) DeleteUserEducation(c echo.Context) error {
	var req EducationIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	var education models.Education
	if err := h.db.Where("id = ? AND user_id = ?", req.EducationID, user.ID).
		First(&education).Error; err != nil {
		return response.BadRequest(c, "education already deleted")
	}
	if err := h.db.Delete(&education).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Education deleted successfully", nil)
}
