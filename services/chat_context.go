// services/chat_context.go - Catalogue snapshot for the chat assistant
package services

import (
	"log"

	"clubhub/models"

	"gorm.io/gorm"
)

// ClubSnapshot is the normalised, read-only view of a club the assistant
// grounds its answers on.
type ClubSnapshot struct {
	Name            string
	Description     string
	MembersCount    int
	IsRecruiting    bool
	ApplicationLink string
}

type EventSnapshot struct {
	Title       string
	Description string
	Category    string
	Date        string
	Time        string
	Location    string
	Organizer   string
}

type SnapshotStats struct {
	TotalClubs      int
	TotalMembers    int
	TotalEvents     int
	RecruitingClubs int
}

// Snapshot is a point-in-time extraction of the whole catalogue.
type Snapshot struct {
	Clubs  []ClubSnapshot
	Events []EventSnapshot
	Stats  SnapshotStats
}

// CollectSnapshot reads the catalogue fresh. Clubs and events come back in
// insertion order. A failed read yields an empty snapshot rather than an
// error so that prompt construction never fails on a store fault.
func CollectSnapshot(db *gorm.DB) Snapshot {
	var clubs []models.Club
	if err := db.Order("id ASC").Find(&clubs).Error; err != nil {
		log.Printf("⚠️  Snapshot: club query failed: %v", err)
		return Snapshot{}
	}

	var events []models.Event
	if err := db.Order("id ASC").Find(&events).Error; err != nil {
		log.Printf("⚠️  Snapshot: event query failed: %v", err)
		return Snapshot{}
	}

	snap := Snapshot{
		Clubs:  make([]ClubSnapshot, 0, len(clubs)),
		Events: make([]EventSnapshot, 0, len(events)),
	}

	for _, club := range clubs {
		snap.Clubs = append(snap.Clubs, newClubSnapshot(club))
	}
	for _, event := range events {
		snap.Events = append(snap.Events, newEventSnapshot(event))
	}

	snap.Stats.TotalClubs = len(snap.Clubs)
	snap.Stats.TotalEvents = len(snap.Events)
	for _, club := range snap.Clubs {
		snap.Stats.TotalMembers += club.MembersCount
		if club.IsRecruiting {
			snap.Stats.RecruitingClubs++
		}
	}

	return snap
}

// newClubSnapshot applies every default exactly once, so no downstream
// consumer has to null-check.
func newClubSnapshot(club models.Club) ClubSnapshot {
	count := club.MembersCount
	if count < 0 {
		count = 0
	}
	return ClubSnapshot{
		Name:            club.Name,
		Description:     club.Description,
		MembersCount:    count,
		IsRecruiting:    club.IsRecruiting,
		ApplicationLink: club.ApplicationLink,
	}
}

func newEventSnapshot(event models.Event) EventSnapshot {
	return EventSnapshot{
		Title:       event.Title,
		Description: event.Description,
		Category:    event.Category,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		Organizer:   event.Organizer,
	}
}
