package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func callEnvelope(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	return resp.StatusCode, body
}

func TestErrorEnvelopeOmitsEmptyCode(t *testing.T) {
	status, body := callEnvelope(t, func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusServiceUnavailable, "down")
	})
	if status != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
	if body["success"] != false || body["error"] != "down" {
		t.Errorf("unexpected body %v", body)
	}
	if _, ok := body["code"]; ok {
		t.Errorf("expected no code, got %v", body["code"])
	}
}

func TestPaginatedEnvelope(t *testing.T) {
	status, body := callEnvelope(t, func(c *fiber.Ctx) error {
		return Paginated(c, []string{"a", "b"}, NewPagination(2, 2), 5)
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	page, ok := body["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected pagination object, got %v", body["pagination"])
	}
	if page["page"] != float64(2) || page["total"] != float64(5) || page["totalPages"] != float64(3) {
		t.Errorf("unexpected pagination %v", page)
	}
}

func TestDeleted(t *testing.T) {
	_, body := callEnvelope(t, Deleted)
	data, _ := body["data"].(map[string]interface{})
	if body["success"] != true || data["deleted"] != true {
		t.Errorf("unexpected body %v", body)
	}
}
