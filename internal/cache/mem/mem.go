package mem

import (
	"sort"
	"sync"

	"festhub/internal/domain"

	"github.com/google/uuid"
)

type Cache struct {
	mu     sync.RWMutex
	valid  bool
	events map[uuid.UUID]domain.Event
}

func New() *Cache {
	return &Cache{
		events: make(map[uuid.UUID]domain.Event),
	}
}

func (c *Cache) Update(events []domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = make(map[uuid.UUID]domain.Event)
	for i := range events {
		c.events[events[i].ID] = events[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.valid
}

func (c *Cache) GetByID(id uuid.UUID) (domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	event, ok := c.events[id]
	if !ok {
		return domain.Event{}, false
	}
	return event, true
}

func (c *Cache) List() []domain.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	events := make([]domain.Event, 0, len(c.events))
	for _, event := range c.events {
		events = append(events, event)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

func (c *Cache) Featured(limit int) []domain.Event {
	events := c.List()
	featured := make([]domain.Event, 0, limit)
	for _, event := range events {
		if !event.Featured {
			continue
		}
		featured = append(featured, event)
		if len(featured) == limit {
			break
		}
	}
	return featured
}
