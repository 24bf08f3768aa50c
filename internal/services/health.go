package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Storage      string            `json:"storage"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// StorageChecker is implemented by the image store.
type StorageChecker interface {
	Check(ctx context.Context) error
}

// HealthCheck pings the database and, when configured, the image store.
func HealthCheck(ctx context.Context, db *gorm.DB, storage StorageChecker) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Storage: "disabled",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("database connection error: %v", err)
	} else if err := sqlDB.PingContext(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("database ping failed: %v", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = db.Dialector.Name()
	}

	if storage != nil {
		if err := storage.Check(ctx); err != nil {
			if result.Status == "healthy" {
				result.Status = "degraded"
			}
			result.Storage = "unreachable"
			result.Details["storage_error"] = err.Error()
		} else {
			result.Storage = "ok"
		}
	}

	return result
}
