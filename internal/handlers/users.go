package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/internal/middleware"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/utils"
)

type UsersHandler struct {
	Users  *services.UserService
	Access *services.AccessService
}

func NewUsersHandler(users *services.UserService, access *services.AccessService) *UsersHandler {
	return &UsersHandler{Users: users, Access: access}
}

type updateUserRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=150"`
	Email    *string  `json:"email" validate:"omitempty,email,max=255"`
	Password *string  `json:"password" validate:"omitempty,password"`
	Role     *string  `json:"role"`
	Age      *int     `json:"age" validate:"omitempty,min=1,max=120"`
	Height   *float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight   *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
}

func (h *UsersHandler) List(c *fiber.Ctx) error {
	p := utils.ParsePagination(c)

	filter := services.UserFilter{Search: strings.TrimSpace(c.Query("search"))}
	if raw := strings.TrimSpace(c.Query("role")); raw != "" {
		role, err := models.ParseUserRole(raw)
		if err != nil {
			return respondError(c, services.InvalidRole("unknown role %q", raw))
		}
		filter.Role = role
	}

	users, total, err := h.Users.List(c.UserContext(), filter, p)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Paginated(c, users, p, total)
}

func (h *UsersHandler) Get(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "id", "user id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Access.Authorize(middleware.GetCurrentUser(c), services.ResourceUser, services.ActionRead, userID); err != nil {
		return respondError(c, err)
	}

	user, err := h.Users.Get(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}

// GetByEmail lets members look up only their own account.
func (h *UsersHandler) GetByEmail(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	email := services.NormalizeEmail(c.Params("email"))

	if !currentUser.IsAdmin() && email != currentUser.Email {
		return respondError(c, services.Forbidden("you can only look up your own account"))
	}

	user, err := h.Users.GetByEmail(c.UserContext(), email)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}

func (h *UsersHandler) Update(c *fiber.Ctx) error {
	currentUser := middleware.GetCurrentUser(c)
	userID, err := paramUUID(c, "id", "user id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Access.Authorize(currentUser, services.ResourceUser, services.ActionUpdate, userID); err != nil {
		return respondError(c, err)
	}

	var req updateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, err)
	}

	upd := services.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Height:   req.Height,
		Weight:   req.Weight,
	}
	if req.Role != nil {
		role, err := models.ParseUserRole(*req.Role)
		if err != nil {
			return respondError(c, services.InvalidRole("unknown role %q", *req.Role))
		}
		upd.Role = &role
	}

	user, err := h.Users.Update(c.UserContext(), currentUser, userID, upd)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}

func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	userID, err := paramUUID(c, "id", "user id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Users.Delete(c.UserContext(), middleware.GetCurrentUser(c), userID); err != nil {
		return respondError(c, err)
	}
	return utils.Deleted(c)
}
