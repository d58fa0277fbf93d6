// Package db provides the GORM database bootstrap.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "social_backend/internal/feature/auth/domain/entity"
	postentity "social_backend/internal/feature/posts/domain/entity"
	recipeentity "social_backend/internal/feature/recipes/domain/entity"
)

// Config holds the database connection settings read from the environment.
type Config struct {
	Driver   string // "mysql" (default) or "postgres"
	User     string
	Password string
	Name     string
	Host     string
	Port     string
}

// LoadConfig reads the connection settings from environment variables.
func LoadConfig() Config {
	return Config{
		Driver:   os.Getenv("DB_DRIVER"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
	}
}

// BuildDSN renders the driver-specific connection string for the config.
func BuildDSN(cfg Config) string {
	if cfg.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Opener opens a gorm.DB for a DSN. It exists so connection retries can be
// tested without a real database.
type Opener func(dsn string) (*gorm.DB, error)

// DefaultOpener returns the Opener for the configured driver.
func DefaultOpener(cfg Config) Opener {
	if cfg.Driver == "postgres" {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	}
}

// ConnectWithRetry keeps trying to open the database until it succeeds or
// the timeout elapses. The database container is often still starting when
// the server comes up.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to the database and, when RUN_MIGRATIONS=true, migrates
// the application schema. It terminates the process on failure.
func OpenDB() *gorm.DB {
	cfg := LoadConfig()

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, DefaultOpener(cfg))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&recipeentity.Recipe{},
			&postentity.Post{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
