package words

import (
	"log"

	"github.com/mrlokans/wordlist/internal/entities"
)

// Sentinel results returned by SentinelStore in place of errors.
const (
	InsertFailed int64 = 0
	DeleteFailed int64 = 0
	UpdateFailed int64 = -1
	CountFailed  int64 = 0
)

// SentinelStore exposes the repository with the legacy failure contract: every
// error is logged and turned into a reserved return value. Not-found and failure
// are indistinguishable here; use Repository when the cause matters.
type SentinelStore struct {
	repo *Repository
}

// NewSentinelStore wraps repo.
func NewSentinelStore(repo *Repository) *SentinelStore {
	return &SentinelStore{repo: repo}
}

// Query returns the entry at position, or a zero entry (ID 0, empty word).
func (s *SentinelStore) Query(position int) entities.WordEntry {
	entry, err := s.repo.QueryByPosition(position)
	if err != nil {
		log.Printf("[WORDS] query exception: %v", err)
		return entities.WordEntry{}
	}
	return entry
}

// Insert returns the new id, or InsertFailed.
func (s *SentinelStore) Insert(word string) int64 {
	id, err := s.repo.Insert(word)
	if err != nil {
		log.Printf("[WORDS] insert exception: %v", err)
		return InsertFailed
	}
	return id
}

// Count returns the number of rows, or CountFailed.
func (s *SentinelStore) Count() int64 {
	total, err := s.repo.Count()
	if err != nil {
		log.Printf("[WORDS] count exception: %v", err)
		return CountFailed
	}
	return total
}

// Delete returns the number of rows removed, or DeleteFailed.
func (s *SentinelStore) Delete(id int64) int64 {
	deleted, err := s.repo.DeleteByID(id)
	if err != nil {
		log.Printf("[WORDS] delete exception: %v", err)
		return DeleteFailed
	}
	return deleted
}

// Update returns the number of rows updated, or UpdateFailed.
func (s *SentinelStore) Update(id int64, word string) int64 {
	updated, err := s.repo.UpdateByID(id, word)
	if err != nil {
		log.Printf("[WORDS] update exception: %v", err)
		return UpdateFailed
	}
	return updated
}

// Search returns an open cursor, or nil. Callers must nil-check and Close it.
func (s *SentinelStore) Search(pattern string) *Cursor {
	cursor, err := s.repo.Search(pattern)
	if err != nil {
		log.Printf("[WORDS] search exception: %v", err)
		return nil
	}
	return cursor
}
