package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams is a normalized page window; Page is 1-based.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads ?page= and ?limit=. Unparseable values fall back to the defaults.
func ParsePagination(c *fiber.Ctx) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = DefaultPageSize
	}
	return NewPagination(page, limit)
}

func NewPagination(page, limit int) PaginationParams {
	page = max(page, 1)
	switch {
	case limit < 1:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	return PaginationParams{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

func (p PaginationParams) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

func (p PaginationParams) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset).Limit(p.Limit)
}
