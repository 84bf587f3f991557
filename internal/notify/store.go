package notify

import (
	"sync"

	"github.com/bloodstream/bloodstream-go/internal/models"
)

// Store holds the notifications known to this client in arrival order,
// newest first. It performs no deduplication: the same server notification
// arriving twice (once over REST history, once pushed) appears twice.
// Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []models.Notification
	subs  []func()
}

func NewStore() *Store {
	return &Store{}
}

// Add prepends a notification and notifies subscribers.
func (s *Store) Add(n models.Notification) {
	s.mu.Lock()
	s.items = append([]models.Notification{n}, s.items...)
	s.mu.Unlock()
	s.notify()
}

// Replace swaps the whole list, e.g. after fetching history over REST.
// The given slice is stored as-is, newest first is the caller's job.
func (s *Store) Replace(items []models.Notification) {
	s.mu.Lock()
	s.items = append([]models.Notification(nil), items...)
	s.mu.Unlock()
	s.notify()
}

// All returns a copy of the list in arrival order, newest first.
func (s *Store) All() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.items...)
}

// Unread counts the notifications not yet marked read.
func (s *Store) Unread() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.items {
		if !it.IsRead {
			n++
		}
	}
	return n
}

// MarkRead marks every held notification with the given id as read.
// Unknown ids are a no-op.
func (s *Store) MarkRead(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ID == id && !s.items[i].IsRead {
			s.items[i].IsRead = true
			changed = true
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// MarkAllRead marks every held notification as read.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	for i := range s.items {
		s.items[i].IsRead = true
	}
	s.mu.Unlock()
	s.notify()
}

// Remove drops every held notification with the given id.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notify()
}

// Clear drops everything, e.g. on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// synchronously on the mutating goroutine and must not call back into the
// store's mutating methods.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := append(([]func())(nil), s.subs...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
