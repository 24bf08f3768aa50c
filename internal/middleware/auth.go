package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
)

const (
	currentUserKey = "currentUser"
	userIDKey      = "userID"
)

type AuthMiddleware struct {
	Auth *services.AuthService
}

func NewAuthMiddleware(auth *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{Auth: auth}
}

func CORS(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}

func unauthenticated(c *fiber.Ctx, message string) error {
	return utils.ErrorWithCode(c, fiber.StatusUnauthorized, string(services.KindUnauthenticated), message)
}

func (a *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		logger.Warn("jwt_missing_header", map[string]interface{}{
			"ip":   c.IP(),
			"path": c.Path(),
		})
		return unauthenticated(c, "missing authorization header")
	}

	tokenString, ok := bearerToken(authHeader)
	if !ok {
		logger.Warn("jwt_invalid_format", map[string]interface{}{
			"ip":          c.IP(),
			"path":        c.Path(),
			"auth_header": authHeader[:min(len(authHeader), 20)] + "...",
		})
		return unauthenticated(c, "invalid authorization format")
	}

	user, err := a.Auth.Authenticate(c.UserContext(), tokenString)
	if err != nil {
		logger.Warn("jwt_validation_failed", map[string]interface{}{
			"ip":    c.IP(),
			"path":  c.Path(),
			"error": err.Error(),
		})
		return unauthenticated(c, err.Error())
	}

	c.Locals(currentUserKey, user)
	c.Locals(userIDKey, user.ID.String())
	return c.Next()
}

// bearerToken extracts the token from "Bearer <token>"; the scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return unauthenticated(c, "unauthorized")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return utils.ErrorWithCode(c, fiber.StatusForbidden, string(services.KindForbidden), "insufficient role")
	}
}

func AdminOnly(c *fiber.Ctx) error {
	return RequireRole(models.UserRoleAdmin)(c)
}

func GetCurrentUser(c *fiber.Ctx) *models.User {
	value := c.Locals(currentUserKey)
	if value == nil {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
