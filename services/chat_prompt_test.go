package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPromptEmptySnapshot(t *testing.T) {
	prompt := BuildSystemPrompt(Snapshot{})

	assert.Contains(t, prompt, "CLUBS (0 total):")
	assert.Contains(t, prompt, "UPCOMING EVENTS (0 total):")
	assert.Contains(t, prompt, "- Total Clubs: 0")
	assert.Contains(t, prompt, "- Total Members: 0")
	assert.Contains(t, prompt, "- Recruiting Clubs: 0")
	assert.Contains(t, prompt, "- Total Events: 0")
	assert.Contains(t, prompt, "Guidelines:")

	// No club or event lines; the only "- " bullets left are the four
	// statistics lines.
	assert.Equal(t, 4, strings.Count(prompt, "\n- "))
}

func TestBuildSystemPromptRendersCatalogue(t *testing.T) {
	snap := Snapshot{
		Clubs: []ClubSnapshot{
			{Name: "Astro Club", Description: "Space things.", MembersCount: 45, IsRecruiting: true},
			{Name: "Code Warriors", Description: "Programming.", MembersCount: 78, ApplicationLink: "https://forms.gle/x"},
		},
		Events: []EventSnapshot{
			{Title: "Tech Symposium 2025", Category: "Technical", Description: "Talks.",
				Date: "Nov 14", Time: "10:00 AM", Location: "Auditorium", Organizer: "Code Warriors"},
		},
		Stats: SnapshotStats{TotalClubs: 2, TotalMembers: 123, TotalEvents: 1, RecruitingClubs: 1},
	}

	prompt := BuildSystemPrompt(snap)

	assert.Contains(t, prompt, "- Astro Club: Space things. (Recruiting, 45 members)")
	assert.Contains(t, prompt, "- Code Warriors: Programming. (Not recruiting, 78 members), apply at https://forms.gle/x")
	assert.Contains(t, prompt, "- Tech Symposium 2025 (Technical): Talks. on Nov 14 at 10:00 AM in Auditorium, organized by Code Warriors")
	assert.Contains(t, prompt, "CLUBS (2 total):")
	assert.Contains(t, prompt, "- Total Members: 123")
}

func TestBuildSystemPromptTruncatesToTen(t *testing.T) {
	var snap Snapshot
	for i := 1; i <= 12; i++ {
		snap.Clubs = append(snap.Clubs, ClubSnapshot{
			Name:        fmt.Sprintf("Club%02d", i),
			Description: "d",
		})
		snap.Events = append(snap.Events, EventSnapshot{
			Title:    fmt.Sprintf("Event%02d", i),
			Category: "c",
		})
	}
	snap.Stats = SnapshotStats{TotalClubs: 12, TotalEvents: 12}

	prompt := BuildSystemPrompt(snap)

	// Exactly the first 10 of each, in snapshot order.
	assert.Equal(t, 10, strings.Count(prompt, "- Club"))
	assert.Equal(t, 10, strings.Count(prompt, "- Event"))
	assert.Contains(t, prompt, "Club10")
	assert.NotContains(t, prompt, "Club11")
	assert.Contains(t, prompt, "Event10")
	assert.NotContains(t, prompt, "Event11")

	// Counts still cover the whole catalogue.
	assert.Contains(t, prompt, "CLUBS (12 total):")
	assert.Contains(t, prompt, "UPCOMING EVENTS (12 total):")
}
