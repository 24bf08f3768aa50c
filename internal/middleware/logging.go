package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gymmanagement/gym/pkg/logger"
)

func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := logger.GenerateRequestID()
		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		statusCode := c.Response().StatusCode()
		details := map[string]interface{}{
			"method":        c.Method(),
			"path":          c.Path(),
			"status_code":   statusCode,
			"latency_ms":    time.Since(start).Milliseconds(),
			"user_agent":    c.Get("User-Agent"),
			"ip":            c.IP(),
			"request_body":  logger.GetRequestBodySummary(c),
			"response_body": logger.GetResponseSizeSummary(c),
			"request_id":    requestID,
		}

		userID := logger.GetUserIDFromContext(c)
		switch {
		case userID != nil && statusCode >= 500:
			logger.ErrorWithUser(*userID, "http_request", err, details)
		case userID != nil && statusCode >= 400:
			logger.WarnWithUser(*userID, "http_request", details)
		case userID != nil:
			logger.InfoWithUser(*userID, "http_request", details)
		case statusCode >= 500:
			logger.Error("http_request", err, details)
		case statusCode >= 400:
			logger.Warn("http_request", details)
		default:
			logger.Info("http_request", details)
		}

		return err
	}
}

var securityReasons = map[int]string{
	fiber.StatusUnauthorized: "unauthenticated",
	fiber.StatusForbidden:    "access_denied",
	fiber.StatusNotFound:     "not_found",
}

func SecurityLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		statusCode := c.Response().StatusCode()
		reason, ok := securityReasons[statusCode]
		if !ok {
			return err
		}

		userID := logger.GetUserIDFromContext(c)
		details := map[string]interface{}{
			"method":  c.Method(),
			"path":    c.Path(),
			"ip":      c.IP(),
			"user_id": userID,
			"reason":  reason,
		}

		switch {
		case userID != nil:
			logger.WarnWithUser(*userID, reason, details)
		case statusCode == fiber.StatusUnauthorized:
			logger.Warn("unauthenticated_request", details)
		default:
			logger.Warn(reason+"_unauthenticated", details)
		}

		return err
	}
}
