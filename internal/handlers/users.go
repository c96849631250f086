package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db, log: logger.New("UserHandler")}
}

type UpdateUserRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

type UserIDRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	role, err := models.GetRoleByName(h.db, models.RoleUser)
	if err != nil {
		return response.BadRequest(c, "No Role of user")
	}
	var users []models.User
	if err := h.db.Where("role_id = ?", role.ID).Preload("Detail").Find(&users).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "All Users", users)
}

func (h *UserHandler) ShowUserByID(c echo.Context) error {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return requiredField(c, "user_id")
	}

	role, err := models.GetRoleByName(h.db, models.RoleUser)
	if err != nil {
		return response.BadRequest(c, "No Role of user")
	}

	user := &models.User{}
	if err := h.db.Where("id = ? AND role_id = ?", userID, role.ID).
		Preload("Detail").First(user).Error; err != nil {
		return response.BadRequest(c, "This not an user")
	}
	return response.OK(c, "User details", user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var other models.User
	if err := h.db.Where("email = ? AND id <> ?", req.Email, req.UserID).
		First(&other).Error; err == nil {
		return invalidField(c, "email", "The email has already been taken.")
	}

	user, err := models.GetUserInRole(h.db, req.UserID, models.RoleUser)
	if err != nil {
		return response.BadRequest(c, "This not an user")
	}

	if err := h.db.Model(user).Updates(map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "User updated successfully", nil)
}

func (h *UserHandler) SoftDeleteUser(c echo.Context) error {
	var req UserIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		return response.BadRequest(c, "No user Found")
	}
	if err := h.db.Delete(&user).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "User deleted successfully", nil)
}

func (h *UserHandler) RestoreUser(c echo.Context) error {
	var req UserIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var user models.User
	if err := models.WithTrashed(h.db).First(&user, req.UserID).Error; err != nil {
		return invalidField(c, "user_id", "The selected user_id is invalid.")
	}
	if !user.IsTrashed() {
		return response.OK(c, "User already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&user).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "User restored successfully", nil)
}
