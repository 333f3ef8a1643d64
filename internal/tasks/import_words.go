package tasks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// WordImporter stores a batch of words atomically.
type WordImporter interface {
	InsertMany(words []string) ([]int64, error)
}

// ImportWordsTask inserts a batch of words into the word list.
type ImportWordsTask struct {
	Words []string `json:"words"`
}

func (t ImportWordsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "import_words",
		MaxAttempts: 3,
		Backoff:     5 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ImportWordsProcessor inserts the task's words in a single transaction, so a
// retried task never leaves a partial batch behind.
func ImportWordsProcessor(store WordImporter) backlite.QueueProcessor[ImportWordsTask] {
	return func(ctx context.Context, task ImportWordsTask) error {
		if len(task.Words) == 0 {
			return nil
		}

		ids, err := store.InsertMany(task.Words)
		if err != nil {
			return fmt.Errorf("import %d words: %w", len(task.Words), err)
		}

		log.Printf("[TASK] Imported %d words", len(ids))
		return nil
	}
}

func NewImportWordsQueue(store WordImporter) backlite.Queue {
	return backlite.NewQueue(ImportWordsProcessor(store))
}

// EnqueueImport queues words for insertion and returns the task id.
func (c *Client) EnqueueImport(words []string) (string, error) {
	ids, err := c.Add(ImportWordsTask{Words: words}).Save()
	if err != nil {
		return "", fmt.Errorf("failed to enqueue import: %w", err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("failed to enqueue import: no task id returned")
	}
	log.Printf("[TASK] Queued import of %d words as %s", len(words), ids[0])
	return ids[0], nil
}

// ErrTaskNotFound is returned by ImportStatus for ids the queue does not know,
// including tasks past their retention.
var ErrTaskNotFound = errors.New("task not found")

// ImportStatus reports where a queued import stands: pending, running, success
// or failure.
func (c *Client) ImportStatus(ctx context.Context, taskID string) (string, error) {
	status, err := c.Status(ctx, taskID)
	if err != nil {
		return "", fmt.Errorf("failed to read task status: %w", err)
	}
	if status == backlite.TaskStatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return TaskStatusString(status), nil
}

func TaskStatusString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
