package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/gymmanagement/gym/internal/config"
	"github.com/gymmanagement/gym/internal/models"
	"github.com/gymmanagement/gym/pkg/logger"
	"github.com/gymmanagement/gym/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the configured database, migrates the schema and seeds the
// first admin account when the users table is empty.
func Connect(dbCfg config.DBConfig, seedCfg config.SeedConfig) (*gorm.DB, error) {
	dialector, err := Dialector(dbCfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	if dbCfg.Type == "sqlite" {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(max(dbCfg.MaxOpenConns/2, 1))
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := SeedAdminUser(db, seedCfg); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Info("database_connected", map[string]interface{}{
		"type": dbCfg.Type,
		"name": dbCfg.Name,
	})

	return db, nil
}

// Dialector picks the gorm driver for DB_TYPE. For sqlite, Name is the file path.
func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Type) {
	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil

	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
		)
		return mysql.Open(dsn), nil

	case "sqlite":
		return sqlite.Open(cfg.Name), nil

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.Event{},
		&models.TraineeProgress{},
	)
}

func SeedAdminUser(db *gorm.DB, cfg config.SeedConfig) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: hash,
		Name:         "Admin",
		Role:         models.UserRoleAdmin,
		JoinDate:     utils.NowISO(),
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("admin_user_seeded", map[string]interface{}{
		"email": admin.Email,
	})
	return nil
}
