// Package store holds the in-memory task state: the set of canonical
// identities in play, the ordered pending list, and the completed history.
//
// A Store is created by the application's composition root and handed to the
// layers that need it. State lives only as long as the process.
package store

import (
	"slices"
	"sync"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
	"github.com/twiced-technology-gmbh/todolist/internal/task"
)

// entry is a pending task. The encoded string is what callers see; rank and
// due are decoded from it once at registration.
type entry struct {
	encoded  string
	identity string
	category task.Category
	rank     int
	due      date.Date
}

// Store is safe for concurrent use; each operation runs under one lock.
type Store struct {
	mu        sync.Mutex
	active    map[string]struct{}
	pending   []entry
	completed []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		active: make(map[string]struct{}),
	}
}

// IsNew reports whether no pending task uses the canonical identity of title.
func (s *Store) IsNew(title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, taken := s.active[task.Identity(title)]
	return !taken
}

// Register records title as in play and inserts encoded into the pending list.
//
// Callers must check IsNew first. Registering a title that is already in play
// adds a second pending entry with the same identity.
func (s *Store) Register(title, encoded string, category task.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity := task.Identity(title)
	s.active[identity] = struct{}{}

	e := entry{
		encoded:  encoded,
		identity: identity,
		category: category,
		rank:     task.Rank(encoded),
		due:      task.DueDate(encoded),
	}
	s.pending = slices.Insert(s.pending, insertIndex(s.pending, e), e)
}

// insertIndex returns the position before the first entry that ranks lower
// than e, or that shares its rank and is due strictly later. Entries that
// compare equal keep their place ahead of e.
func insertIndex(pending []entry, e entry) int {
	for i, cur := range pending {
		if cur.rank > e.rank {
			return i
		}
		if cur.rank == e.rank && cur.due.After(e.due.Time) {
			return i
		}
	}
	return len(pending)
}

// Complete moves the first pending occurrence of encoded to the front of the
// completed list and frees its title for reuse. It reports false, and changes
// nothing, when encoded is not pending.
func (s *Store) Complete(encoded string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.remove(encoded)
	if !ok {
		return false
	}
	s.completed = slices.Insert(s.completed, 0, task.Completed(e.encoded))
	delete(s.active, e.identity)
	return true
}

// Delete removes the first pending occurrence of encoded and frees its title.
// The completed list is untouched. It reports false when encoded is not pending.
func (s *Store) Delete(encoded string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.remove(encoded)
	if !ok {
		return false
	}
	delete(s.active, e.identity)
	return true
}

// remove drops the first pending entry whose encoded string matches.
func (s *Store) remove(encoded string) (entry, bool) {
	i := slices.IndexFunc(s.pending, func(e entry) bool { return e.encoded == encoded })
	if i < 0 {
		return entry{}, false
	}
	e := s.pending[i]
	s.pending = slices.Delete(s.pending, i, i+1)
	return e, true
}

// ClearHistory empties the completed list and returns how many entries it held.
// Identities were already released at completion time.
func (s *Store) ClearHistory() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.completed)
	s.completed = nil
	return n
}

// Pending returns a copy of the pending list in display order.
func (s *Store) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.pending))
	for i, e := range s.pending {
		out[i] = e.encoded
	}
	return out
}

// Completed returns a copy of the completed list, newest first.
func (s *Store) Completed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.completed)
}

// Lookup returns the encoded string of the first pending task whose canonical
// identity matches title.
func (s *Store) Lookup(title string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity := task.Identity(title)
	for _, e := range s.pending {
		if e.identity == identity {
			return e.encoded, true
		}
	}
	return "", false
}

// CategoryCounts returns the number of pending tasks per category.
func (s *Store) CategoryCounts() map[task.Category]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[task.Category]int, len(task.Categories()))
	for _, e := range s.pending {
		counts[e.category]++
	}
	return counts
}
