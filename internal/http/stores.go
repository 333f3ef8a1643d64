package http

import (
	"context"
	"time"

	"github.com/mrlokans/wordlist/internal/entities"
)

// WordStore is the subset of the word repository the API needs.
type WordStore interface {
	QueryByPosition(position int) (entities.WordEntry, error)
	Insert(word string) (int64, error)
	Count() (int64, error)
	DeleteByID(id int64) (int64, error)
	UpdateByID(id int64, word string) (int64, error)
	SearchAll(pattern string) ([]entities.WordEntry, error)
}

// ImportQueue hands word batches to the background task queue and reports on them.
type ImportQueue interface {
	EnqueueImport(words []string) (string, error)
	ImportStatus(ctx context.Context, taskID string) (string, error)
}

// Resetter rebuilds the word table from the seed list.
type Resetter interface {
	Reset() error
}

// SnapshotStore lists and reads the rows saved before destructive operations.
type SnapshotStore interface {
	List() ([]string, error)
	Load(name string, dest any) error
}

// ResetStatus reports on the scheduled reset.
type ResetStatus interface {
	LastRun() (time.Time, error)
	NextRunTime() *time.Time
}
