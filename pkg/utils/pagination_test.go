package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults for zero values", 0, 0, 1, DefaultPageSize, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"limit capped", 1, 500, 1, MaxPageSize, 0},
		{"negative page", -3, 5, 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("NewPagination(%d, %d) = %+v", tt.page, tt.limit, p)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	p := NewPagination(1, 10)
	for total, want := range map[int64]int{0: 0, 1: 1, 10: 1, 11: 2, 95: 10} {
		if got := p.TotalPages(total); got != want {
			t.Errorf("TotalPages(%d) = %d, want %d", total, got, want)
		}
	}
}

func TestParsePagination(t *testing.T) {
	var got PaginationParams
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c)
		return nil
	})

	tests := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{Page: 1, Limit: DefaultPageSize}},
		{"?page=3&limit=5", PaginationParams{Page: 3, Limit: 5, Offset: 10}},
		{"?page=abc&limit=xyz", PaginationParams{Page: 1, Limit: DefaultPageSize}},
	}
	for _, tt := range tests {
		if _, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil)); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("ParsePagination(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}
