package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"jobboard/internal/api/middleware"
	"jobboard/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailForm() url.Values {
	return url.Values{
		"gender":          {"male"},
		"marital_status":  {"single"},
		"military_status": {"completed"},
		"nationality":     {"Egyptian"},
	}
}

// multipartRequest builds an echo context carrying form fields plus a
// single file part.
func multipartRequest(t *testing.T, e *echo.Echo, target string, fields url.Values, fileField, filename string, content []byte, caller *models.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, value := range values {
			require.NoError(t, writer.WriteField(key, value))
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		middleware.SetCurrentUser(c, caller)
	}
	return c, rec
}

func TestUpdateOrCreateUserDetailsCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewUserDetailHandler(db)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	c, rec := formRequest(e, http.MethodPost, "/api/users/details/create-or-update",
		detailForm().Encode(), user)
	require.NoError(t, h.UpdateOrCreateUserDetails(c))
	env := decodeEnvelope(t, rec)
	require.Equal(t, 200, env.Status, "errors: %s", env.Errors)
	assert.Equal(t, "your details added successfully", env.Message)

	form := detailForm()
	form.Set("marital_status", "married")
	c, rec = formRequest(e, http.MethodPost, "/api/users/details/create-or-update",
		form.Encode(), user)
	require.NoError(t, h.UpdateOrCreateUserDetails(c))
	assert.Equal(t, "your details updated successfully", decodeEnvelope(t, rec).Message)

	var count int64
	require.NoError(t, db.Model(&models.UserDetail{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var detail models.UserDetail
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&detail).Error)
	assert.Equal(t, "married", detail.MaritalStatus)
}

func TestUpdateOrCreateUserDetailsRejectsBadEnums(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewUserDetailHandler(db)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	form := detailForm()
	form.Set("gender", "other")
	c, rec := formRequest(e, http.MethodPost, "/api/users/details/create-or-update",
		form.Encode(), user)
	require.NoError(t, h.UpdateOrCreateUserDetails(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Contains(t, string(env.Errors), "The selected gender is invalid.")
}

func TestUpdateOrCreateUserDetailsRejectsNonPDFResume(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewUserDetailHandler(db)
	registerTestStorage(t)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	c, rec := multipartRequest(t, e, "/api/users/details/create-or-update",
		detailForm(), "resume", "cv.docx", []byte("not a pdf"), user)
	require.NoError(t, h.UpdateOrCreateUserDetails(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 400, env.Status)
	assert.Contains(t, string(env.Errors), "The resume must be a file of type: pdf.")
}

func TestUpdateOrCreateUserDetailsReplacesResumeOnDisk(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewUserDetailHandler(db)
	basePath := registerTestStorage(t)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	c, rec := multipartRequest(t, e, "/api/users/details/create-or-update",
		detailForm(), "resume", "cv.pdf", []byte("%PDF-1.4 first"), user)
	require.NoError(t, h.UpdateOrCreateUserDetails(c))
	require.Equal(t, 200, decodeEnvelope(t, rec).Status)

	var detail models.UserDetail
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&detail).Error)
	firstResume := detail.Resume
	require.NotEmpty(t, firstResume)

	entries, err := os.ReadDir(basePath)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A second upload replaces both the stored URL and the old file.
	c, rec = multipartRequest(t, e, "/api/users/details/create-or-update",
		detailForm(), "resume", "cv.pdf", []byte("%PDF-1.4 second"), user)
	require.NoError(t, h.UpdateOrCreateUserDetails(c))
	require.Equal(t, 200, decodeEnvelope(t, rec).Status)

	require.NoError(t, db.Where("user_id = ?", user.ID).First(&detail).Error)
	assert.NotEqual(t, firstResume, detail.Resume)

	entries, err = os.ReadDir(basePath)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "old resume file must be removed after the new one is written")
}

func TestGetUserDetailsWithoutRecordReturnsEmptyData(t *testing.T) {
	db := newTestDB(t)
	e := newTestEcho()
	h := NewUserDetailHandler(db)

	user := createUser(t, db, "Bob", "bob@example.com", models.RoleUser)

	c, rec := jsonRequest(e, http.MethodGet, "/api/users/details", "", user)
	require.NoError(t, h.GetUserDetails(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 200, env.Status)
	assert.Equal(t, "user details", env.Message)
	assert.Empty(t, env.Data)
}
