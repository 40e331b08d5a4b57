package service

import (
	"context"

	"festhub/internal/cache/mem"
	"festhub/internal/domain"
	"festhub/internal/storage"

	"github.com/google/uuid"
)

// FeaturedLimit is the number of events shown on the landing page.
const FeaturedLimit = 3

type EventService struct {
	eventStorage storage.EventStorage
	cache        *mem.Cache
}

func NewEventService(eventStorage storage.EventStorage) *EventService {
	return &EventService{
		eventStorage: eventStorage,
		cache:        mem.New(),
	}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	if s.cache.Valid() {
		return s.cache.List(), nil
	}
	events, err := s.eventStorage.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Update(events)
	return events, nil
}

func (s *EventService) Featured(ctx context.Context) ([]domain.Event, error) {
	if s.cache.Valid() {
		return s.cache.Featured(FeaturedLimit), nil
	}
	return s.eventStorage.ListFeatured(ctx, FeaturedLimit)
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	// Registration counters change often, always read them fresh.
	return s.eventStorage.GetEvent(ctx, id)
}

// Invalidate drops the cached event list. Called after any write that
// changes events, registration counters included.
func (s *EventService) Invalidate() {
	s.cache.Invalidate()
}
