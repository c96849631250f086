package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db, log: logger.New("CategoryHandler")}
}

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID *uint  `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	ParentID   *uint  `json:"parent_id"`
}

type CategoryIDRequest struct {
	CategoryID uint `json:"category_id" validate:"required"`
}

func (h *CategoryHandler) GetAllCategories(c echo.Context) error {
	var categories []models.Category
	if err := h.db.Find(&categories).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All categories", categories)
}

func (h *CategoryHandler) GetCategoryByID(c echo.Context) error {
	categoryID, ok := queryID(c, "category_id")
	if !ok {
		return requiredField(c, "category_id")
	}

	category := &models.Category{}
	if err := h.db.Preload("Parent").Preload("Jobs").
		First(category, categoryID).Error; err != nil {
		return invalidField(c, "category_id", "The selected category_id is invalid.")
	}
	return response.OK(c, "Category details", category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	// Parent is a plain id reference, never an owning pointer; a bad
	// parent id simply fails validation here.
	if req.ParentID != nil {
		var parent models.Category
		if err := h.db.First(&parent, *req.ParentID).Error; err != nil {
			return invalidField(c, "parent_id", "The selected parent_id is invalid.")
		}
	}

	category := models.Category{Name: req.Name, ParentID: req.ParentID}
	if err := h.db.Create(&category).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Category created successfully", nil)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		return invalidField(c, "category_id", "The selected category_id is invalid.")
	}

	if req.ParentID != nil {
		var parent models.Category
		if err := h.db.First(&parent, *req.ParentID).Error; err != nil {
			return invalidField(c, "parent_id", "The selected parent_id is invalid.")
		}
	}

	if err := h.db.Model(&category).Updates(map[string]interface{}{
		"name":      req.Name,
		"parent_id": req.ParentID,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Category updated successfully", nil)
}

func (h *CategoryHandler) SoftDeleteCategory(c echo.Context) error {
	var req CategoryIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		return response.BadRequest(c, "category already deleted")
	}
	if err := h.db.Delete(&category).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "category deleted successfully", nil)
}

func (h *CategoryHandler) RestoreCategory(c echo.Context) error {
	var req CategoryIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var category models.Category
	if err := models.WithTrashed(h.db).First(&category, req.CategoryID).Error; err != nil {
		return invalidField(c, "category_id", "The selected category_id is invalid.")
	}
	if !category.IsTrashed() {
		return response.OK(c, "category already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&category).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "category restored successfully", nil)
}
