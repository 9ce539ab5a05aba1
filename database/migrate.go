// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"clubhub/models"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Club{},
		&models.ClubMember{},
		&models.Event{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes(db)

	log.Println("✅ All migrations completed successfully")
}

func createIndexes(db *gorm.DB) {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_clubs_recruiting ON clubs(is_recruiting)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_club_members_club ON club_members(club_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at DESC)")
}
