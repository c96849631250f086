package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/api/middleware"
	apivalidator "jobboard/internal/api/validator"
	appconfig "jobboard/internal/config"
	appdb "jobboard/internal/db"
	"jobboard/internal/models"
	"jobboard/internal/services"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// envelope mirrors the wire shape; errors and data stay raw so each
// test decodes only what it asserts on.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, appdb.Migrate(db))
	require.NoError(t, models.SeedPermissions(db))
	return db
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = apivalidator.NewValidator()
	return e
}

// registerTestStorage points uploads at a throwaway directory and
// returns its path so tests can look at what landed on disk.
func registerTestStorage(t *testing.T) string {
	t.Helper()

	basePath := t.TempDir()
	local, err := services.NewLocalService(appconfig.StorageConfig{
		Provider: "local",
		BasePath: basePath,
	}, "http://localhost:8080")
	require.NoError(t, err)
	services.RegisterStorage(local)
	return basePath
}

func createUser(t *testing.T, db *gorm.DB, name, email, roleName string) *models.User {
	t.Helper()

	role, err := models.GetRoleByName(db, roleName)
	require.NoError(t, err)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	require.NoError(t, db.Create(user).Error)

	loaded, err := models.GetUserWithRole(db, user.ID)
	require.NoError(t, err)
	return loaded
}

func createJobFixtures(t *testing.T, db *gorm.DB) (category models.Category, location models.Location, jobType models.JobType) {
	t.Helper()

	category = models.Category{Name: "Engineering"}
	require.NoError(t, db.Create(&category).Error)
	location = models.Location{Country: "Egypt", City: "Cairo"}
	require.NoError(t, db.Create(&location).Error)
	jobType = models.JobType{Title: "Full Time"}
	require.NoError(t, db.Create(&jobType).Error)
	return
}

func createJob(t *testing.T, db *gorm.DB, companyID uint, status models.PublishStatus) *models.Job {
	t.Helper()

	category, location, jobType := createJobFixtures(t, db)
	job := &models.Job{
		Title:             "Backend Engineer",
		SalaryRange:       "1000 - 2000",
		Requirements:      "Go, SQL",
		Description:       "Build and run the backend",
		YearsOfExperience: models.ExperienceOneToThree,
		IsPublished:       status,
		CategoryID:        category.ID,
		CompanyID:         companyID,
		LocationID:        location.ID,
		JobTypeID:         jobType.ID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// jsonRequest builds an echo context carrying a JSON body and, when
// caller is non-nil, an authenticated user.
func jsonRequest(e *echo.Echo, method, target, body string, caller *models.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		middleware.SetCurrentUser(c, caller)
	}
	return c, rec
}

// formRequest is jsonRequest for form-encoded bodies, the shape the
// apply endpoint receives.
func formRequest(e *echo.Echo, method, target, body string, caller *models.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		middleware.SetCurrentUser(c, caller)
	}
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
