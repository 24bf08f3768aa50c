package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/services"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
)

func parseUUID(value string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(value))
}

func paramUUID(c *fiber.Ctx, name, label string) (uuid.UUID, error) {
	id, err := parseUUID(c.Params(name))
	if err != nil {
		return uuid.Nil, services.Validation("invalid %s", label)
	}
	return id, nil
}

// optionalVersion reads the ?version= query parameter used for stale-write checks.
func optionalVersion(c *fiber.Ctx) (*int, error) {
	raw := strings.TrimSpace(c.Query("version"))
	if raw == "" {
		return nil, nil
	}
	version, err := strconv.Atoi(raw)
	if err != nil || version < 1 {
		return nil, services.Validation("version must be a positive integer")
	}
	return &version, nil
}

// respondError writes the error envelope for err. Classified errors keep their
// message and code; anything else is logged and hidden behind a 500.
func respondError(c *fiber.Ctx, err error) error {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		return utils.ErrorWithCode(c, services.StatusFor(svcErr.Kind), string(svcErr.Kind), svcErr.Error())
	}

	details := map[string]interface{}{
		"method": c.Method(),
		"path":   c.Path(),
	}
	if userID := logger.GetUserIDFromContext(c); userID != nil {
		logger.ErrorWithUser(*userID, "request_failed", err, details)
	} else {
		logger.Error("request_failed", err, details)
	}
	return utils.Error(c, fiber.StatusInternalServerError, "internal server error")
}
