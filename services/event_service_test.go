package services

import (
	"testing"
	"time"

	"clubhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSizeClassDefaultsAndValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	event, err := svc.CreateEvent(EventInput{Title: "Tech Symposium 2025"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultEventSize, event.SizeClass)

	_, err = svc.CreateEvent(EventInput{Title: "Bad", SizeClass: "gigantic"})
	assert.ErrorIs(t, err, ErrInvalidSizeClass)

	large, err := svc.CreateEvent(EventInput{Title: "Fest", SizeClass: "large"})
	require.NoError(t, err)
	assert.Equal(t, models.EventSizeLarge, large.SizeClass)
}

func TestListEventsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	base := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	older := models.Event{Title: "Older", CreatedAt: base}
	newer := models.Event{Title: "Newer", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	events, err := svc.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Newer", events[0].Title)
	assert.Equal(t, "Older", events[1].Title)
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	event, err := svc.CreateEvent(EventInput{Title: "Open Mic", Category: "Cultural"})
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(event.ID, EventInput{
		Title:    "Open Mic Night",
		Category: "Cultural",
		Location: "Cafeteria",
	})
	require.NoError(t, err)
	assert.Equal(t, "Open Mic Night", updated.Title)
	assert.Equal(t, "Cafeteria", updated.Location)

	_, err = svc.UpdateEvent(9999, EventInput{Title: "x"})
	assert.ErrorIs(t, err, ErrEventNotFound)

	require.NoError(t, svc.DeleteEvent(event.ID))
	_, err = svc.GetEvent(event.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
