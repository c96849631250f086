package handlers

import (
	"strings"
	"time"

	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db        *gorm.DB
	jwtSecret string
	log       *logger.Logger
}

func NewAuthHandler(db *gorm.DB, jwtSecret string) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret, log: logger.New("AuthHandler")}
}

type RegisterRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=6,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Register creates an account with the User role.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
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

	role, err := models.GetRoleByName(h.db, models.RoleUser)
	if err != nil {
		return response.BadRequest(c, "No Role of user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	if err := h.db.Create(&user).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	h.log.Success("User registered: %s", user.Email)
	return response.OK(c, "You have signed-in", nil)
}

// Login verifies credentials and issues a bearer token backed by a
// persisted token row.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := &models.User{}
	if err := h.db.Preload("Role.Permissions").Where("email = ?", req.Email).First(user).Error; err != nil {
		return invalidField(c, "email", "The selected email is invalid.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return response.JSON(c, 401, "Bad credentials", nil, nil)
	}

	tokenString, err := utils.GenerateJWT(user, h.jwtSecret)
	if err != nil {
		return h.log.Error("Failed to generate token", err)
	}

	token := models.AuthToken{
		UserID:    user.ID,
		Token:     tokenString,
		ExpiresAt: time.Now().Add(utils.TokenTTL),
	}
	if err := h.db.Create(&token).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, "Done", map[string]string{"token": tokenString})
}

// Logout revokes the presented token.
func (h *AuthHandler) Logout(c echo.Context) error {
	user := middleware.CurrentUser(c)

	authHeader := c.Request().Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if err := h.db.Where("user_id = ? AND token = ?", user.ID, tokenString).
		Delete(&models.AuthToken{}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, "Logged out", nil)
}

// UpdatePassword rotates the caller's password after checking the old
// one.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return invalidField(c, "old_password", "The old_password does not match your current password.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("password", string(hashed)).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, "Password updated successfully", nil)
}
