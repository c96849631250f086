package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type PermissionHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPermissionHandler(db *gorm.DB) *PermissionHandler {
	return &PermissionHandler{db: db, log: logger.New("PermissionHandler")}
}

type CreatePermissionRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type UpdatePermissionRequest struct {
	PermissionID uint   `json:"permission_id" validate:"required"`
	Title        string `json:"title" validate:"required,max=255"`
}

type PermissionIDRequest struct {
	PermissionID uint `json:"permission_id" validate:"required"`
}

func (h *PermissionHandler) GetAllPermissions(c echo.Context) error {
	var permissions []models.Permission
	if err := h.db.Order("id DESC").Find(&permissions).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All Permissions", permissions)
}

func (h *PermissionHandler) GetPermissionByID(c echo.Context) error {
	permissionID, ok := queryID(c, "permission_id")
	if !ok {
		return requiredField(c, "permission_id")
	}

	permission := &models.Permission{}
	if err := h.db.First(permission, permissionID).Error; err != nil {
		return invalidField(c, "permission_id", "The selected permission_id is invalid.")
	}
	return response.OK(c, "Permission details", permission)
}

func (h *PermissionHandler) CreatePermission(c echo.Context) error {
	var req CreatePermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var existing models.Permission
	if err := h.db.Where("title = ?", req.Title).First(&existing).Error; err == nil {
		return invalidField(c, "title", "The title has already been taken.")
	}

	if err := h.db.Create(&models.Permission{Title: req.Title}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "permission added successfully", nil)
}

func (h *PermissionHandler) UpdatePermission(c echo.Context) error {
	var req UpdatePermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var permission models.Permission
	if err := h.db.First(&permission, req.PermissionID).Error; err != nil {
		return response.BadRequest(c, "Permission already deleted")
	}

	var other models.Permission
	if err := h.db.Where("title = ? AND id <> ?", req.Title, req.PermissionID).
		First(&other).Error; err == nil {
		return invalidField(c, "title", "The title has already been taken.")
	}

	if err := h.db.Model(&permission).Update("title", req.Title).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Permission updated successfully", nil)
}

func (h *PermissionHandler) SoftDeletePermission(c echo.Context) error {
	var req PermissionIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var permission models.Permission
	if err := h.db.First(&permission, req.PermissionID).Error; err != nil {
		return response.BadRequest(c, "Permission already deleted")
	}
	if err := h.db.Delete(&permission).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Permission deleted successfully", nil)
}

func (h *PermissionHandler) RestorePermission(c echo.Context) error {
	var req PermissionIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var permission models.Permission
	if err := models.WithTrashed(h.db).First(&permission, req.PermissionID).Error; err != nil {
		return invalidField(c, "permission_id", "The selected permission_id is invalid.")
	}
	if !permission.IsTrashed() {
		return response.OK(c, "Permission already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&permission).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Permission restored successfully", nil)
}
