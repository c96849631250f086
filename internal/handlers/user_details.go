package handlers

import (
	"path/filepath"
	"strings"

	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserDetailHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserDetailHandler(db *gorm.DB) *UserDetailHandler {
	return &UserDetailHandler{db: db, log: logger.New("UserDetailHandler")}
}

type UpsertUserDetailRequest struct {
	Gender         string `json:"gender" form:"gender" validate:"required,oneof=male female"`
	MaritalStatus  string `json:"marital_status" form:"marital_status" validate:"required,oneof=single married widowed divorced separated"`
	MilitaryStatus string `json:"military_status" form:"military_status" validate:"required,oneof=exemption completed postponed 'currently serving'"`
	Nationality    string `json:"nationality" form:"nationality" validate:"required,max=255"`
}

func (h *UserDetailHandler) GetUserDetails(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var detail models.UserDetail
	if err := h.db.Where("user_id = ?", user.ID).First(&detail).Error; err != nil {
		return response.OK(c, "user details", nil)
	}
	return response.OK(c, "user details", userDetailsResource(&detail))
}

// UpdateOrCreateUserDetails upserts the caller's profile record. A new
// resume is written to storage before the old one is removed, so a
// failed upload keeps the previous file intact.
func (h *UserDetailHandler) UpdateOrCreateUserDetails(c echo.Context) error {
	var req UpsertUserDetailRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)

	var existing models.UserDetail
	exists := h.db.Where("user_id = ?", user.ID).First(&existing).Error == nil

	resume := ""
	if exists {
		resume = existing.Resume
	}

	fileData, fileHeader, err := readUpload(c, "resume")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if fileData != nil {
		if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
			return invalidField(c, "resume", "The resume must be a file of type: pdf.")
		}
		uploaded, err := services.GetStorage().UploadFile(c.Request().Context(),
			fileData, fileHeader.Filename, types.ObjectCannedACLPrivate, "application/pdf")
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		if resume != "" {
			if err := services.GetStorage().DeleteFile(c.Request().Context(), resume); err != nil {
				h.log.Warn("Failed to delete old resume %s: %v", resume, err)
			}
		}
		resume = uploaded
	}

	values := map[string]interface{}{
		"gender":          req.Gender,
		"marital_status":  req.MaritalStatus,
		"military_status": req.MilitaryStatus,
		"nationality":     req.Nationality,
		"resume":          resume,
	}

	if exists {
		if err := h.db.Model(&existing).Updates(values).Error; err != nil {
			return response.BadRequest(c, err.Error())
		}
		loaded := &models.User{}
		if err := h.db.Preload("Detail").First(loaded, user.ID).Error; err != nil {
			return response.BadRequest(c, err.Error())
		}
		return response.OK(c, "your details updated successfully", loaded)
	}

	detail := models.UserDetail{
		UserID:         user.ID,
		Gender:         req.Gender,
		MaritalStatus:  req.MaritalStatus,
		MilitaryStatus: req.MilitaryStatus,
		Nationality:    req.Nationality,
		Resume:         resume,
	}
	if err := h.db.Create(&detail).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}

	loaded := &models.User{}
	if err := h.db.Preload("Detail").First(loaded, user.ID).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "your details added successfully", loaded)
}
