package database

import (
	"fmt"

	"github.com/SeokGyeon/1-HowDoILook-1team/internal/config"
	"github.com/SeokGyeon/1-HowDoILook-1team/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func createDatabaseIfNotExists(cfg config.DatabaseConfig) error {
	defaultDSN := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=postgres sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(defaultDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	var exists bool
	checkSQL := "SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1)"
	if err := db.Raw(checkSQL, cfg.DBName).Scan(&exists).Error; err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		createSQL := fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)
		if err := db.Exec(createSQL).Error; err != nil {
			return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
		}
	}

	return nil
}

func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.URL == "" {
		if err := createDatabaseIfNotExists(cfg.Database); err != nil {
			fmt.Printf("데이터베이스 생성 실패, 직접 연결 시도: %v\n", err)
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// unique 위반을 gorm.ErrDuplicatedKey로 받기 위해 필요하다
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Style{},
		&models.Category{},
		&models.Image{},
		&models.Tag{},
		&models.Curation{},
		&models.Comment{},
	)
}
