package database

import (
	"testing"

	"clubhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Club{}, &models.ClubMember{}, &models.Event{}))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newMigratedDB(t)

	Seed(db)
	Seed(db) // second run must not duplicate anything

	var clubCount, eventCount int64
	require.NoError(t, db.Model(&models.Club{}).Count(&clubCount).Error)
	require.NoError(t, db.Model(&models.Event{}).Count(&eventCount).Error)
	assert.Equal(t, int64(3), clubCount)
	assert.Equal(t, int64(3), eventCount)

	var astro models.Club
	require.NoError(t, db.Where("name = ?", "Astro Club").First(&astro).Error)
	assert.True(t, astro.IsRecruiting)
	assert.Equal(t, 45, astro.MembersCount)
	assert.NotEmpty(t, astro.WhyJoinReasons)
}
