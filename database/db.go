// database/db.go - Database Connection (PostgreSQL, SQLite fallback)
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the database and returns the handle. Production deployments
// set DATABASE_URL (or the discrete DB_* variables); without either the
// server falls back to a local SQLite file, which is enough for development.
func InitDB() *gorm.DB {
	dialector, name := resolveDialector()

	var err error
	db, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to %s database: %v", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ %s database connected successfully", name)
	return db
}

func resolveDialector() (gorm.Dialector, string) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return postgres.Open(dsn), "PostgreSQL"
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		port := getEnvOrDefault("DB_PORT", "5432")
		user := getEnvOrDefault("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getEnvOrDefault("DB_NAME", "clubhub")
		sslmode := getEnvOrDefault("DB_SSLMODE", "disable")

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
		return postgres.Open(dsn), "PostgreSQL"
	}

	path := getEnvOrDefault("SQLITE_PATH", "clubs.db")
	log.Printf("⚠️  DATABASE_URL not set, falling back to SQLite at %s", path)
	return sqlite.Open(path), "SQLite"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// CloseDB closes the database connection
func CloseDB() error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %v", err)
	}

	log.Println("Database connection closed")
	return nil
}
