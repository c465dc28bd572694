package service

import (
	"time"

	"github.com/moses-automall/intranet-api/internal/data"
	"github.com/moses-automall/intranet-api/internal/domain/model"
)

// EventService serves the company event calendar.
type EventService struct {
	events *data.EventRepo
	now    func() time.Time
}

// NewEventService constructs an EventService.
func NewEventService(events *data.EventRepo, now func() time.Time) *EventService {
	if now == nil {
		now = time.Now
	}
	return &EventService{events: events, now: now}
}

// ListUpcoming returns events happening today or later.
func (s *EventService) ListUpcoming() []model.Event {
	return s.events.ListUpcoming(s.now())
}

// Get returns a single event by ID, including past events.
func (s *EventService) Get(id string) (model.Event, error) {
	return s.events.Get(id)
}

// RSVP records a user's attendance response for an event.
func (s *EventService) RSVP(eventID, userID string, attending bool) (model.Event, error) {
	if err := s.events.SetRSVP(eventID, userID, attending); err != nil {
		return model.Event{}, err
	}
	return s.events.Get(eventID)
}
