// database/seed.go - Seed data bootstrap
package database

import (
	"log"

	"clubhub/models"

	"gorm.io/gorm"
)

// Seed populates the catalogue with starter data the first time the server
// runs against an empty database. Safe to call on every startup.
func Seed(db *gorm.DB) {
	seedClubs(db)
	seedEvents(db)
}

func seedClubs(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Club{}).Count(&count).Error; err != nil {
		log.Printf("⚠️  Seed: could not count clubs: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✓ Database already has %d clubs", count)
		return
	}

	clubs := []models.Club{
		{
			Name:         "Astro Club",
			Description:  "Exploring the cosmos and celestial wonders.",
			MembersCount: 45,
			IsRecruiting: true,
			WhyJoinReasons: models.StringList{
				"Stargazing sessions with the campus telescope",
				"Astrophotography workshops",
			},
		},
		{
			Name:         "Code Warriors",
			Description:  "Programming competitions and software development.",
			MembersCount: 78,
			IsRecruiting: false,
		},
		{
			Name:            "Cultural Club",
			Description:     "Celebrating diversity through arts and culture.",
			MembersCount:    92,
			IsRecruiting:    true,
			ApplicationLink: "https://forms.gle/example",
		},
	}

	if err := db.Create(&clubs).Error; err != nil {
		log.Printf("⚠️  Seed: could not create clubs: %v", err)
		return
	}
	log.Printf("✓ Seeded %d clubs", len(clubs))
}

func seedEvents(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		log.Printf("⚠️  Seed: could not count events: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✓ Database already has %d events", count)
		return
	}

	events := []models.Event{
		{
			Title:       "Tech Symposium 2025",
			Description: "A full day of talks, demos and project showcases.",
			Category:    "Technical",
			Date:        "November 14, 2025",
			Time:        "10:00 AM - 5:00 PM",
			Location:    "Main Auditorium",
			Organizer:   "Code Warriors",
			SizeClass:   models.EventSizeLarge,
		},
		{
			Title:       "Night Sky Watch",
			Description: "Guided telescope session on the rooftop terrace.",
			Category:    "Science",
			Date:        "November 21, 2025",
			Time:        "8:00 PM - 11:00 PM",
			Location:    "Block C Rooftop",
			Organizer:   "Astro Club",
		},
		{
			Title:       "Cultural Evening",
			Description: "Music, dance and theatre performances by students.",
			Category:    "Cultural",
			Date:        "December 5, 2025",
			Time:        "6:00 PM - 9:00 PM",
			Location:    "Open Air Theatre",
			Organizer:   "Cultural Club",
			SizeClass:   models.EventSizeSmall,
		},
	}

	if err := db.Create(&events).Error; err != nil {
		log.Printf("⚠️  Seed: could not create events: %v", err)
		return
	}
	log.Printf("✓ Seeded %d events", len(events))
}
