package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db, log: logger.New("AdminHandler")}
}

type CreateAdminRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=6,eqfield=Password"`
}

type UpdateAdminRequest struct {
	AdminID uint   `json:"admin_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

type AdminIDRequest struct {
	AdminID uint `json:"admin_id" validate:"required"`
}

func (h *AdminHandler) GetAllAdmins(c echo.Context) error {
	role, err := models.GetRoleByName(h.db, models.RoleAdmin)
	if err != nil {
		return response.JSON(c, 404, "No Role of admin", nil, nil)
	}
	var admins []models.User
	if err := h.db.Where("role_id = ?", role.ID).Find(&admins).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All Admins", admins)
}

func (h *AdminHandler) GetAdminByID(c echo.Context) error {
	adminID, ok := queryID(c, "admin_id")
	if !ok {
		return requiredField(c, "admin_id")
	}

	admin, err := models.GetUserInRole(h.db, adminID, models.RoleAdmin)
	if err != nil {
		return response.BadRequest(c, "This not an admin")
	}
	return response.OK(c, "Admin details", admin)
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return invalidField(c, "email", "The email has already been taken.")
	}

	role, err := models.GetRoleByName(h.db, models.RoleAdmin)
	if err != nil {
		return response.JSON(c, 404, "No Role of admin", nil, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	admin := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	if err := h.db.Create(&admin).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Admin created successfully", nil)
}

func (h *AdminHandler) UpdateAdmin(c echo.Context) error {
	var req UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var admin models.User
	if err := h.db.First(&admin, req.AdminID).Error; err != nil {
		return invalidField(c, "admin_id", "The selected admin_id is invalid.")
	}

	var other models.User
	if err := h.db.Where("email = ? AND id <> ?", req.Email, req.AdminID).
		First(&other).Error; err == nil {
		return invalidField(c, "email", "The email has already been taken.")
	}

	if err := h.db.Model(&admin).Updates(map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Admin updated successfully", nil)
}

func (h *AdminHandler) SoftDeleteAdmin(c echo.Context) error {
	var req AdminIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var admin models.User
	if err := h.db.First(&admin, req.AdminID).Error; err != nil {
		return response.BadRequest(c, "Admin already deleted")
	}
	if err := h.db.Delete(&admin).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Admin deleted successfully", nil)
}

func (h *AdminHandler) RestoreAdmin(c echo.Context) error {
	var req AdminIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var admin models.User
	if err := models.WithTrashed(h.db).First(&admin, req.AdminID).Error; err != nil {
		return invalidField(c, "admin_id", "The selected admin_id is invalid.")
	}
	if !admin.IsTrashed() {
		return response.OK(c, "Admin already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&admin).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Admin restored successfully", nil)
}
