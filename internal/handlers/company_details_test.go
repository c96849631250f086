package handlers

import (
	"net/url"
	"testing"

	"jobboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func companyDetailForm() url.Values {
	return url.Values{
		"site":        {"https://acme.example.com"},
		"description": {"We build things"},
		"size":        {"51-200"},
		"job_numbers": {"12"},
	}
}

func TestUpdateOrCreateCompanyDetailsAcceptsUppercaseLogoExtension(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewCompanyDetailHandler(db)
	registerTestStorage(t)

	company := createUser(t, db, "Acme", "acme@example.com", models.RoleCompany)

	c, rec := multipartRequest(t, e, "/api/companies/details/create-or-update",
		companyDetailForm(), "logo", "logo.PNG", []byte("png bytes"), company)
	require.NoError(t, h.UpdateOrCreateCompanyDetails(c))

	env := decodeEnvelope(t, rec)
	require.Equal(t, 200, env.Status, "errors: %s", env.Errors)
	assert.Equal(t, "your company details added successfully", env.Message)

	var detail models.CompanyDetail
	require.NoError(t, db.Where("company_id = ?", company.ID).First(&detail).Error)
	assert.NotEmpty(t, detail.Logo)
}

func TestUpdateOrCreateCompanyDetailsRejectsNonImageLogo(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewCompanyDetailHandler(db)
	registerTestStorage(t)

	company := createUser(t, db, "Acme", "acme@example.com", models.RoleCompany)

	c, rec := multipartRequest(t, e, "/api/companies/details/create-or-update",
		companyDetailForm(), "logo", "logo.exe", []byte("not an image"), company)
	require.NoError(t, h.UpdateOrCreateCompanyDetails(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Contains(t, string(env.Errors), "The logo must be an image.")
}
