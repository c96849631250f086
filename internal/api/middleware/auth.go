package middleware

import (
	"strings"
	"time"

	"jobboard/internal/api/response"
	"jobboard/internal/models"
	"jobboard/internal/utils"
	"jobboard/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var log = logger.New("auth_middleware")

const userContextKey = "authUser"

type AuthMiddleware struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthMiddleware(db *gorm.DB, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{db: db, jwtSecret: jwtSecret}
}

// Middleware resolves the bearer token into the authenticated user and
// stores it on the request context. Every failure mode answers with
// the same body-level 404 the API has always used for missing tokens.
func (m *AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return response.JSON(c, 404, "Authorization Token not found", "Unauthenticated.", nil)
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return response.JSON(c, 404, "Authorization Token not found", "Unauthenticated.", nil)
			}
			tokenString := tokenParts[1]

			claims, err := utils.ParseJWT(tokenString, m.jwtSecret)
			if err != nil {
				log.Error("Error parsing JWT token", err)
				return response.JSON(c, 404, "Authorization Token not found", "Unauthenticated.", nil)
			}

			// A token deleted by logout is revoked even if the JWT
			// itself is still within its expiry.
			var token models.AuthToken
			if err := m.db.Where("user_id = ? AND token = ? AND expires_at > ?",
				claims.UserID, tokenString, time.Now()).First(&token).Error; err != nil {
				return response.JSON(c, 404, "Authorization Token not found", "Unauthenticated.", nil)
			}

			user, err := models.GetUserWithRole(m.db, claims.UserID)
			if err != nil {
				return response.JSON(c, 404, "Authorization Token not found", "Unauthenticated.", nil)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated caller set by the auth
// middleware, or nil outside an authenticated request.
func CurrentUser(c echo.Context) *models.User {
	if user, ok := c.Get(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// SetCurrentUser injects a caller directly; used by tests to exercise
// gated handlers without minting tokens.
func SetCurrentUser(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}
