package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/internal/middleware"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type registerRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=150"`
	Email           string   `json:"email" validate:"required,email,max=255"`
	Password        string   `json:"password" validate:"required,password"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required"`
	Age             *int     `json:"age" validate:"omitempty,min=1,max=120"`
	Height          *float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight          *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	result, err := h.Auth.Register(c.UserContext(), services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Age:             req.Age,
		Height:          req.Height,
		Weight:          req.Weight,
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, fiber.StatusCreated, result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	result, err := h.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login_failed", map[string]interface{}{
			"email": services.NormalizeEmail(req.Email),
			"ip":    c.IP(),
		})
		return respondError(c, err)
	}

	logger.InfoWithUser(result.User.ID.String(), "login_success", map[string]interface{}{
		"ip": c.IP(),
	})
	return utils.Success(c, fiber.StatusOK, result)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, middleware.GetCurrentUser(c))
}
