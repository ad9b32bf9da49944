package deeplink

import "sync"

// PendingStore holds at most one deep link captured before the UI layer was
// ready to receive events. The zero value is an empty store.
type PendingStore struct {
	mu   sync.Mutex
	link string
	set  bool
}

// NewPendingStore creates an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{}
}

// Set stores link, replacing any value already held.
func (s *PendingStore) Set(link string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.link = link
	s.set = true
}

// Take returns the held link and empties the store. The second return value
// is false when nothing was held.
func (s *PendingStore) Take() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.link, s.set
	s.link, s.set = "", false
	return link, ok
}

// Peek returns the held link without clearing it.
func (s *PendingStore) Peek() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.link, s.set
}
