package handlers

import (
	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type SkillHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{db: db, log: logger.New("SkillHandler")}
}

type CreateSkillRequest struct {
	Name              string `json:"name" validate:"required,max=255"`
	YearsOfExperience string `json:"years_of_experience" validate:"required,experience_years"`
	Justification     string `json:"justification" validate:"required"`
}

type UpdateSkillRequest struct {
	SkillID uint `json:"skill_id" validate:"required"`
	CreateSkillRequest
}

type SkillIDRequest struct {
	SkillID uint `json:"skill_id" validate:"required"`
}

func (h *SkillHandler) GetAllSkills(c echo.Context) error {
	var skills []models.Skill
	if err := h.db.Order("id DESC").Find(&skills).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All Skills", skills)
}

// CreateSkill creates the skill row and attaches it to the caller.
func (h *SkillHandler) CreateSkill(c echo.Context) error {
	var req CreateSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)

	skill := models.Skill{
		Name:              req.Name,
		YearsOfExperience: models.ExperienceYears(req.YearsOfExperience),
		Justification:     req.Justification,
	}
	if err := h.db.Create(&skill).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.db.Model(user).Association("Skills").Append(&skill); err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "skill created successfully", nil)
}

// UpdateSkill mutates the skill row itself, so the change is visible
// to every user attached to it. Only a holder of the skill may update
// it.
func (h *SkillHandler) UpdateSkill(c echo.Context) error {
	var req UpdateSkillRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var skill models.Skill
	if err := h.db.First(&skill, req.SkillID).Error; err != nil {
		return response.BadRequest(c, "Skill not exist")
	}

	user := middleware.CurrentUser(c)
	var count int64
	if err := h.db.Table("user_skill").
		Where("user_id = ? AND skill_id = ?", user.ID, skill.ID).
		Count(&count).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	if count == 0 {
		return response.OK(c, "User do not have skill", nil)
	}

	if err := h.db.Model(&skill).Updates(map[string]interface{}{
		"name":                req.Name,
		"years_of_experience": req.YearsOfExperience,
		"justification":       req.Justification,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "skill updated successfully", nil)
}

func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	var req SkillIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var skill models.Skill
	if err := h.db.First(&skill, req.SkillID).Error; err != nil {
		return response.BadRequest(c, "skill already deleted")
	}

	user := middleware.CurrentUser(c)
	var count int64
	if err := h.db.Table("user_skill").
		Where("user_id = ? AND skill_id = ?", user.ID, skill.ID).
		Count(&count).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	if count == 0 {
		return response.OK(c, "User do not have skill", nil)
	}

	if err := h.db.Delete(&skill).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "skill deleted successfully", nil)
}
