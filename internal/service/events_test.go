package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moses-automall/intranet-api/internal/data"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEventService_ListUpcoming(t *testing.T) {
	svc := NewEventService(data.NewEventRepo(), fixedClock(time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)))

	upcoming := svc.ListUpcoming()
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Sales Training Workshop", upcoming[0].Title)
}

func TestEventService_GetIncludesPastEvents(t *testing.T) {
	svc := NewEventService(data.NewEventRepo(), fixedClock(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))

	ev, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Team Meeting", ev.Title)
}

func TestEventService_RSVP(t *testing.T) {
	repo := data.NewEventRepo()
	svc := NewEventService(repo, nil)

	ev, err := svc.RSVP("1", "win-johnsmith", true)
	require.NoError(t, err)
	assert.Equal(t, "1", ev.ID)

	attending, registered := repo.RSVP("1", "win-johnsmith")
	assert.True(t, registered)
	assert.True(t, attending)
}

func TestEventService_RSVPUnknownEvent(t *testing.T) {
	svc := NewEventService(data.NewEventRepo(), nil)

	_, err := svc.RSVP("999", "win-johnsmith", true)
	assert.True(t, apperrors.IsNotFound(err))
}
