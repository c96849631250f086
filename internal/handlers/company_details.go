package handlers

import (
	"mime"
	"path/filepath"
	"strings"

	"jobboard/internal/api/middleware"
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

type CompanyDetailHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanyDetailHandler(db *gorm.DB) *CompanyDetailHandler {
	return &CompanyDetailHandler{db: db, log: logger.New("CompanyDetailHandler")}
}

type UpsertCompanyDetailRequest struct {
	Site        string `json:"site" form:"site" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Size        string `json:"size" form:"size" validate:"required"`
	JobNumbers  string `json:"job_numbers" form:"job_numbers" validate:"required"`
}

// GetCompanyDetails is public, keyed by company_id in the query
// string.
func (h *CompanyDetailHandler) GetCompanyDetails(c echo.Context) error {
	companyID, ok := queryID(c, "company_id")
	if !ok {
		return requiredField(c, "company_id")
	}

	company, err := models.GetUserInRole(h.db, companyID, models.RoleCompany)
	if err != nil {
		return response.JSON(c, 404, "This is not a company", nil, nil)
	}

	var detail models.CompanyDetail
	if err := h.db.Where("company_id = ?", company.ID).First(&detail).Error; err != nil {
		return response.OK(c, "Company details", nil)
	}
	return response.OK(c, "Company details", companyDetailsResource(company.Name, &detail))
}

// UpdateOrCreateCompanyDetails upserts the caller's company profile.
// Only a company account may hold one; the logo follows the same
// write-new-then-delete-old rule as resumes.
func (h *CompanyDetailHandler) UpdateOrCreateCompanyDetails(c echo.Context) error {
	var req UpsertCompanyDetailRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	user := middleware.CurrentUser(c)
	if !user.HasRole(models.RoleCompany) {
		return response.Unauthorized(c)
	}

	var existing models.CompanyDetail
	exists := h.db.Where("company_id = ?", user.ID).First(&existing).Error == nil

	logo := ""
	if exists {
		logo = existing.Logo
	}

	fileData, fileHeader, err := readUpload(c, "logo")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if fileData != nil {
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !lo.Contains(imageExtensions, ext) {
			return invalidField(c, "logo", "The logo must be an image.")
		}
		contentType := mime.TypeByExtension(ext)
		uploaded, err := services.GetStorage().UploadFile(c.Request().Context(),
			fileData, fileHeader.Filename, types.ObjectCannedACLPublicRead, contentType)
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		if logo != "" {
			if err := services.GetStorage().DeleteFile(c.Request().Context(), logo); err != nil {
				h.log.Warn("Failed to delete old logo %s: %v", logo, err)
			}
		}
		logo = uploaded
	}

	if exists {
		if err := h.db.Model(&existing).Updates(map[string]interface{}{
			"site":        req.Site,
			"description": req.Description,
			"size":        req.Size,
			"job_numbers": req.JobNumbers,
			"logo":        logo,
		}).Error; err != nil {
			return response.BadRequest(c, err.Error())
		}
		return response.OK(c, "your company details updated successfully", existing)
	}

	detail := models.CompanyDetail{
		CompanyID:   user.ID,
		Site:        req.Site,
		Description: req.Description,
		Size:        req.Size,
		JobNumbers:  req.JobNumbers,
		Logo:        logo,
	}
	if err := h.db.Create(&detail).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "your company details added successfully", detail)
}
