package services

import (
	"context"
	"fmt"
	"time"

	"github.com/reflexhq/reflex/ent"
	"github.com/reflexhq/reflex/ent/event"
)

// EventService reads the persisted event feed. Writes go through the
// publisher in pkg/events, which inserts the row and issues pg_notify
// in one transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	if client == nil {
		panic("NewEventService: client must not be nil")
	}
	return &EventService{client: client}
}

// Get loads one event row by its integer ID, used to rehydrate
// truncated notify payloads.
func (s *EventService) Get(ctx context.Context, eventID int) (*ent.Event, error) {
	ev, err := s.client.Event.Get(ctx, eventID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	return ev, err
}

// GetEventsSince retrieves events on a channel after a given ID, oldest
// first. SSE subscribers use this to catch up after a reconnect.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	q := s.client.Event.Query().
		Where(event.ChannelEQ(channel))
	if sinceID > 0 {
		q = q.Where(event.IDGT(sinceID))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.Order(ent.Asc(event.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupExpiredEvents removes events older than the retention window.
func (s *EventService) CleanupExpiredEvents(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}
	return count, nil
}
