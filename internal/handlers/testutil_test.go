package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gymmanagement/gym/internal/database"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"gorm.io/gorm"
)

var loggingOnce sync.Once

func setupHandlerLogging() {
	loggingOnce.Do(func() {
		logger.SetOutput(io.Discard)
	})
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	setupHandlerLogging()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}
	return db
}

func createTestMember(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", Name: "Member", Role: models.UserRoleMember}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed creating user: %v", err)
	}
	return user
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding response: %v", err)
	}
	return body
}
