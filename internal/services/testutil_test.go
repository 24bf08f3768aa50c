package services

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
	"gorm.io/gorm"
)

var setupOnce sync.Once

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	setupOnce.Do(func() {
		logger.Init()
		utils.ConfigureJWT("test-secret", 24)
	})

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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.Event{},
		&models.TraineeProgress{},
	); err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         email,
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed creating user %s: %v", email, err)
	}
	return user
}

func createTestWorkout(t *testing.T, db *gorm.DB, owner *models.User, title string, completed bool) *models.Workout {
	t.Helper()
	workout := &models.Workout{
		EventTitle:  title,
		Sets:        3,
		RepsOrSecs:  10,
		RestTime:    60,
		IsCompleted: completed,
		UserID:      owner.ID,
		Version:     1,
	}
	if err := db.Create(workout).Error; err != nil {
		t.Fatalf("failed creating workout: %v", err)
	}
	return workout
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := KindOf(err); got != want {
		t.Fatalf("expected %s error, got %q (%v)", want, got, err)
	}
}

type recordingSnapshots struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingSnapshots) RecordAsync(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recordingSnapshots) recorded() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.ids...)
}

var ctx = context.Background()
