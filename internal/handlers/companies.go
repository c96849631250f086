package handlers

import (
	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db, log: logger.New("CompanyHandler")}
}

type CreateCompanyRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=6,eqfield=Password"`
}

type UpdateCompanyRequest struct {
	CompanyID uint   `json:"company_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type CompanyIDRequest struct {
	CompanyID uint `json:"company_id" validate:"required"`
}

// GetAllCompanies is public; the company projection hides everything
// but name, email and details.
func (h *CompanyHandler) GetAllCompanies(c echo.Context) error {
	role, err := models.GetRoleByName(h.db, models.RoleCompany)
	if err != nil {
		return response.JSON(c, 404, "No role of company found", nil, nil)
	}
	var companies []models.User
	if err := h.db.Where("role_id = ?", role.ID).Preload("CompanyDetail").Find(&companies).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	resources := lo.Map(companies, func(company models.User, _ int) map[string]interface{} {
		return companyResource(&company)
	})
	return response.OK(c, "All Companies", resources)
}

func (h *CompanyHandler) GetCompanyByID(c echo.Context) error {
	companyID, ok := queryID(c, "company_id")
	if !ok {
		return requiredField(c, "company_id")
	}

	role, err := models.GetRoleByName(h.db, models.RoleCompany)
	if err != nil {
		return response.JSON(c, 404, "No role of company found", nil, nil)
	}

	company := &models.User{}
	if err := h.db.Where("id = ? AND role_id = ?", companyID, role.ID).
		Preload("CompanyDetail").First(company).Error; err != nil {
		return response.JSON(c, 404, "This company not found", nil, nil)
	}
	return response.OK(c, "Company Details", companyResource(company))
}

func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req CreateCompanyRequest
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

	role, err := models.GetRoleByName(h.db, models.RoleCompany)
	if err != nil {
		return response.JSON(c, 404, "No Role of Company", nil, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	company := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	if err := h.db.Create(&company).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Company created successfully", nil)
}

func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	var req UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var company models.User
	if err := h.db.First(&company, req.CompanyID).Error; err != nil {
		return invalidField(c, "company_id", "The selected company_id is invalid.")
	}

	var other models.User
	if err := h.db.Where("email = ? AND id <> ?", req.Email, req.CompanyID).
		First(&other).Error; err == nil {
		return invalidField(c, "email", "The email has already been taken.")
	}

	if err := h.db.Model(&company).Updates(map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
	}).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Company updated successfully", nil)
}

func (h *CompanyHandler) SoftDeleteCompany(c echo.Context) error {
	var req CompanyIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var company models.User
	if err := h.db.First(&company, req.CompanyID).Error; err != nil {
		return response.BadRequest(c, "Company already deleted")
	}
	if err := h.db.Delete(&company).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Company deleted successfully", nil)
}

func (h *CompanyHandler) RestoreCompany(c echo.Context) error {
	var req CompanyIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}

	var company models.User
	if err := models.WithTrashed(h.db).First(&company, req.CompanyID).Error; err != nil {
		return invalidField(c, "company_id", "The selected company_id is invalid.")
	}
	if !company.IsTrashed() {
		return response.OK(c, "Company already restored", nil)
	}
	if err := models.WithTrashed(h.db).Model(&company).
		Update("deleted_at", nil).Error; err != nil {
		return response.BadRequest(c, err.Error())
	}
	return response.OK(c, "Company restored successfully", nil)
}
