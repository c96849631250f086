package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type RoleHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoleHandler(db *gorm.DB) *RoleHandler {
	return &RoleHandler{db: db, log: logger.New("RoleHandler")}
}

type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Permissions []uint `json:"permissions" validate:"required,min=1"`
}

type UpdateRoleRequest struct {
	RoleID      uint   `json:"role_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Permissions []uint `json:"permissions" validate:"required,min=1"`
}

type RoleIDRequest struct {
	RoleID uint `json:"role_id" validate:"required"`
}

func (h *RoleHandler) GetAllRoles(c echo.Context) error {
	var roles []models.Role
	if err := h.db.Preload("Permissions").Find(&roles).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All Roles", roles)
}

func (h *RoleHandler) GetRoleByID(c echo.Context) error {
	roleID, ok := queryID(c, "role_id")
	if !ok {
		return requiredField(c, "role_id")
	}

	role := &models.Role{}
	if err := h.db.Preload("Permissions").First(role, roleID).Error; err != nil {
		return invalidField(c, "role_id", "The selected role_id is invalid.")
	}
	return response.OK(c, "Role details", role)
}

func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	permissions, handled, err := h.resolvePermissions(c, req.Permissions)
	if handled {
		return err
	}

	var existing models.Role
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return invalidField(c, "name", "The name has already been taken.")
	}

	role := models.Role{Name: req.Name}
	if err := h.db.Create(&role).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.db.Model(&role).Association("Permissions").Replace(permissions); err != nil {
		return response.BadRequest(c, err.Error())
	}

	h.log.Success("Role created: %s", role.Name)
	return response.OK(c, "Role created successfully", nil)
}

// UpdateRole renames the role and replaces its permission set
// wholesale; permissions not listed are detached.
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	permissions, handled, err := h.resolvePermissions(c, req.Permissions)
	if handled {
		return err
	}

	var role models.Role
	if err := h.db.First(&role, req.RoleID).Error; err != nil {
		return response.BadRequest(c, "Role already deleted")
	}

	var other models.Role
	if err := h.db.Where("name = ? AND id <> ?", req.Name, req.RoleID).
		First(&other).Error; err == nil {
		return invalidField(c, "name", "The name has already been taken.")
	}

	if err := h.db.Model(&role).Update("name", req.Name).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.db.Model(&role).Association("Permissions").Replace(permissions); err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Role updated successfully", nil)
}

func (h *RoleHandler) SoftDeleteRole(c echo.Context) error {
	var req RoleIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var role models.Role
	if err := h.db.First(&role, req.RoleID).Error; err != nil {
		return response.BadRequest(c, "Role already deleted")
	}
	if err := h.db.Delete(&role).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Role deleted successfully", nil)
}

func (h *RoleHandler) RestoreRole(c echo.Context) error {
	var req RoleIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var role models.Role
	if err := models.WithTrashed(h.db).First(&role, req.RoleID).Error; err != nil {
		return invalidField(c, "role_id", "The selected role_id is invalid.")
	}
	if !role.IsTrashed() {
		return response.OK(c, "Role already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&role).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Role restored successfully", nil)
}

// resolvePermissions checks every supplied id against the registry and
// rejects duplicates. handled is true when a validation response has
// already been written; otherwise permissions holds one row per
// requested id.
func (h *RoleHandler) resolvePermissions(c echo.Context, ids []uint) ([]models.Permission, bool, error) {
	if len(lo.Uniq(ids)) != len(ids) {
		return nil, true, invalidField(c, "permissions", "This Permission is Exist")
	}

	var permissions []models.Permission
	if err := h.db.Where("id IN ?", ids).Find(&permissions).Error; err != nil {
		return nil, true, response.BadRequest(c, err.Error())
	}
	if len(permissions) != len(ids) {
		return nil, true, invalidField(c, "permissions", "Invalid Permission Id.")
	}
	return permissions, false, nil
}
