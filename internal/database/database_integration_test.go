//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/gymmanagement/gym/internal/config"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) config.DBConfig {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "gym",
				"POSTGRES_PASSWORD": "gym_secret",
				"POSTGRES_DB":       "gym_management",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to read container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to read mapped port: %v", err)
	}

	return config.DBConfig{
		Type:         "postgres",
		Host:         host,
		Port:         port.Port(),
		User:         "gym",
		Password:     "gym_secret",
		Name:         "gym_management",
		SSLMode:      "disable",
		MaxOpenConns: 5,
	}
}

func TestConnect_Postgres(t *testing.T) {
	loggerOnce.Do(logger.Init)
	dbCfg := startPostgres(t)

	db, err := Connect(dbCfg, seedConfig())
	if err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	var admin models.User
	if err := db.Where("email = ?", "admin@gym.com").First(&admin).Error; err != nil {
		t.Fatalf("expected seeded admin: %v", err)
	}

	member := models.User{Email: "m@gym.com", PasswordHash: "x", Name: "M", Role: models.UserRoleMember}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed creating member: %v", err)
	}
	workout := models.Workout{EventTitle: "Squat", Sets: 3, RepsOrSecs: 10, UserID: member.ID}
	if err := db.Create(&workout).Error; err != nil {
		t.Fatalf("failed creating workout: %v", err)
	}

	// the FK cascade removes the member's workouts
	if err := db.Delete(&member).Error; err != nil {
		t.Fatalf("failed deleting member: %v", err)
	}
	var remaining int64
	db.Model(&models.Workout{}).Where("user_id = ?", member.ID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("expected cascade delete of workouts, %d remain", remaining)
	}
}
