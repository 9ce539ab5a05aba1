package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickSuggestionsWithCatalogue(t *testing.T) {
	snap := Snapshot{
		Clubs: []ClubSnapshot{
			{Name: "Astro Club", MembersCount: 45, IsRecruiting: true},
		},
		Events: []EventSnapshot{
			{Title: "Tech Symposium 2025"},
		},
	}

	suggestions := QuickSuggestions(snap)

	require.Len(t, suggestions, 5)
	assert.Contains(t, suggestions[3], "Astro Club")
	assert.Contains(t, suggestions[4], "Tech Symposium 2025")
}

func TestQuickSuggestionsEmptySnapshot(t *testing.T) {
	suggestions := QuickSuggestions(Snapshot{})

	require.Len(t, suggestions, 3)
	assert.Equal(t, "What clubs are recruiting?", suggestions[0])
}

func TestQuickSuggestionsDeterministic(t *testing.T) {
	snap := Snapshot{
		Clubs:  []ClubSnapshot{{Name: "Robotics Society"}, {Name: "Drama Club"}},
		Events: []EventSnapshot{{Title: "Open Mic Night"}},
	}

	first := QuickSuggestions(snap)
	second := QuickSuggestions(snap)
	assert.Equal(t, first, second)
	assert.Contains(t, first[3], "Robotics Society") // first club only
}
