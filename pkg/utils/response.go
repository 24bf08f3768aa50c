package utils

import "github.com/gofiber/fiber/v2"

type envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Code       string      `json:"code,omitempty"`
	Pagination *pageInfo   `json:"pagination,omitempty"`
}

type pageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(envelope{Success: true, Data: data})
}

// Deleted acknowledges a removal; the body carries no entity.
func Deleted(c *fiber.Ctx) error {
	return Success(c, fiber.StatusOK, fiber.Map{"deleted": true})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return ErrorWithCode(c, status, "", message)
}

// ErrorWithCode adds a machine-readable classification next to the message.
func ErrorWithCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(envelope{Error: message, Code: code})
}

func Paginated(c *fiber.Ctx, data interface{}, p PaginationParams, total int64) error {
	info := &pageInfo{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: p.TotalPages(total)}
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Data: data, Pagination: info})
}
