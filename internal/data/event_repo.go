package data

import (
	"sync"
	"time"

	"github.com/moses-automall/intranet-api/internal/domain/model"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

// EventRepo stores the company calendar and RSVP registrations in memory.
type EventRepo struct {
	mu     sync.RWMutex
	events []model.Event
	rsvps  map[string]map[string]bool // event ID -> user ID -> attending
}

// NewEventRepo creates a repo pre-populated with the seed calendar.
func NewEventRepo() *EventRepo {
	return &EventRepo{
		events: SeedEvents(),
		rsvps:  make(map[string]map[string]bool),
	}
}

// List returns a copy of all events.
func (r *EventRepo) List() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Event(nil), r.events...)
}

// ListUpcoming returns events on or after the given day, in stored order.
// Event dates are ISO yyyy-mm-dd strings so lexical comparison is correct.
func (r *EventRepo) ListUpcoming(today time.Time) []model.Event {
	cutoff := today.Format("2006-01-02")

	r.mu.RLock()
	defer r.mu.RUnlock()
	upcoming := make([]model.Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Date >= cutoff {
			upcoming = append(upcoming, ev)
		}
	}
	return upcoming
}

// Get returns the event with the given ID.
func (r *EventRepo) Get(id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return model.Event{}, apperrors.NotFoundf("event %s not found", id)
}

// SetRSVP records whether a user attends an event. The latest call wins.
func (r *EventRepo) SetRSVP(eventID, userID string, attending bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, ev := range r.events {
		if ev.ID == eventID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.NotFoundf("event %s not found", eventID)
	}

	if r.rsvps[eventID] == nil {
		r.rsvps[eventID] = make(map[string]bool)
	}
	r.rsvps[eventID][userID] = attending
	return nil
}

// RSVP reports a user's registration for an event.
func (r *EventRepo) RSVP(eventID, userID string) (attending, registered bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users, ok := r.rsvps[eventID]
	if !ok {
		return false, false
	}
	attending, registered = users[userID]
	return attending, registered
}
