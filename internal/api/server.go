package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"jobboard/internal/api/response"
	"jobboard/internal/api/validator"
	"jobboard/internal/config"
	"jobboard/internal/models"
	console "jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	db     *gorm.DB
}

var log = console.New("API-Server")

func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	e := echo.New()

	e.Validator = validator.NewValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderContentLength},
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	e.HTTPErrorHandler = customHTTPErrorHandler

	s := &Server{
		echo:   e,
		config: cfg,
		db:     db,
	}

	if err := models.SeedPermissions(db); err != nil {
		log.Warn("Warning: Failed to seed permissions: %v", err)
	} else {
		log.Success("Successfully seeded permissions")
	}

	if err := models.CreateSuperAdminFromEnv(db); err != nil {
		log.Warn("Warning: Failed to create super admin: %v", err)
	} else {
		log.Success("Successfully created super admin")
	}

	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router; tests drive it directly.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// customHTTPErrorHandler keeps the body-level status contract: only
// unmatched routes and bad methods answer with transport-level 404/405;
// everything else, validation errors included, degrades to a status
// 400 envelope at HTTP 200.
func customHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var writeErr error

	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &httpErr):
		switch httpErr.Code {
		case http.StatusNotFound:
			writeErr = response.Transport(c, http.StatusNotFound, "Route not found", nil)
		case http.StatusMethodNotAllowed:
			writeErr = response.Transport(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
		default:
			writeErr = response.JSON(c, http.StatusBadRequest, fmt.Sprintf("%v", httpErr.Message), nil, nil)
		}
	case errors.As(err, &validationErrs):
		writeErr = response.ValidationError(c, validator.Format(validationErrs))
	default:
		writeErr = response.JSON(c, http.StatusBadRequest, err.Error(), nil, nil)
	}

	if writeErr != nil {
		c.Echo().Logger.Error(writeErr)
	}
}
