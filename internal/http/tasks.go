package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordlist/internal/tasks"
)

// TasksController reports on queued imports.
type TasksController struct {
	queue ImportQueue
}

func NewTasksController(queue ImportQueue) *TasksController {
	return &TasksController{queue: queue}
}

// TaskStatusResponse is returned by GET /api/tasks/:id
type TaskStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	if tc.queue == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.queue.ImportStatus(ctx, taskID)
	if errors.Is(err, tasks.ErrTaskNotFound) {
		respondNotFound(c, "task")
		return
	}
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, TaskStatusResponse{ID: taskID, Status: status})
}
