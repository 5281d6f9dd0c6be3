// Package history keeps the bounded, append-only ledger of processed match
// summaries. The ledger is the pipeline's novelty gate: a match id already
// present is never re-enriched.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pubg-tracker/internal/match"
)

// Capacity is the maximum number of retained match summaries. Appending the
// 31st evicts the oldest.
const Capacity = 30

// Store is the retention ledger. All mutation happens under one lock so a
// match is read, decided upon and recorded as a single logical unit.
type Store struct {
	mu      sync.Mutex
	path    string
	matches []match.Summary
	evicted []string
}

// Load reads the persisted ledger from path. A missing file yields an empty
// store; a corrupt file is an error so a truncated write never silently
// resets history.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.matches); err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", path, err)
	}
	return s, nil
}

// Contains reports whether a match id is already in the ledger.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// AppendIfNew appends the summary unless its id is already present, evicting
// the oldest entry when capacity is exceeded. The evicted id is queued for
// DrainEvicted so the caller can invalidate external cache entries. Returns
// false, without any mutation, on a duplicate.
func (s *Store) AppendIfNew(summary match.Summary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(summary.ID) >= 0 {
		return false
	}

	s.matches = append(s.matches, summary)
	for len(s.matches) > Capacity {
		evicted := s.matches[0]
		s.matches = s.matches[1:]
		s.evicted = append(s.evicted, evicted.ID)
	}
	return true
}

// DrainEvicted returns the ids evicted since the last drain and clears the
// queue.
func (s *Store) DrainEvicted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := s.evicted
	s.evicted = nil
	return evicted
}

// Matches returns a copy of the ledger, oldest first.
func (s *Store) Matches() []match.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]match.Summary, len(s.matches))
	copy(out, s.matches)
	return out
}

// Len returns the number of retained summaries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

// Persist writes the ledger back to disk as an ordered JSON array. The write
// goes through a temp file and rename so a crash cannot leave a half-written
// ledger behind.
func (s *Store) Persist() error {
	s.mu.Lock()
	raw, err := json.MarshalIndent(s.matches, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}

// EncodeMatches returns the ledger as the JSON blob mirrored into the cache.
func (s *Store) EncodeMatches() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.matches)
}

func (s *Store) indexOf(id string) int {
	for i := range s.matches {
		if s.matches[i].ID == id {
			return i
		}
	}
	return -1
}
