package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the live entry set. The UI reads it on the bubbletea loop
// while the transport goroutine appends, so access is mutex-guarded.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Entries returns a snapshot copy of the current entry set in arrival
// order. Callers sort for display; the store does not.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entry{}, s.entries...)
}

// Len returns the number of entries, including hidden ones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Append adds an entry, filling in ID, CreatedAt, and Timestamp when the
// producer left them empty. Returns the stored entry.
func (s *Store) Append(e Entry) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UnixMilli()
	}
	if e.Timestamp == "" {
		e.Timestamp = FormatTimestamp(e.CreatedAt)
	}

	s.entries = append(s.entries, e)
	return e
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ToggleExpanded flips the expanded flag of the entry with the given id.
// Returns false if no such entry exists.
func (s *Store) ToggleExpanded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Expanded = !s.entries[i].Expanded
			return true
		}
	}
	return false
}

// SetHidden sets the hidden flag of the entry with the given id.
// Returns false if no such entry exists.
func (s *Store) SetHidden(id string, hidden bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Hidden = hidden
			return true
		}
	}
	return false
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
