package tgbot

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// subscriptions tracks which telegram chats want notifications for a
// festhub user. Safe for concurrent use, Notify runs on the web side.
type subscriptions struct {
	mu sync.RWMutex
	m  map[uuid.UUID]mapset.Set[int64]
}

func newSubs() *subscriptions {
	return &subscriptions{
		m: make(map[uuid.UUID]mapset.Set[int64]),
	}
}

func (s *subscriptions) Add(festhubUserID uuid.UUID, chatID int64) {
	if festhubUserID == uuid.Nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m[festhubUserID] == nil {
		s.m[festhubUserID] = mapset.NewSet[int64]()
	}
	s.m[festhubUserID].Add(chatID)
}

func (s *subscriptions) Remove(festhubUserID uuid.UUID, chatID int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.m[festhubUserID] == nil {
		return
	}
	s.m[festhubUserID].Remove(chatID)
}

func (s *subscriptions) ChatIDs(festhubUserID uuid.UUID) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.m[festhubUserID] == nil {
		return nil
	}
	return s.m[festhubUserID].ToSlice()
}
