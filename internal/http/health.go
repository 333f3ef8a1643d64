package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordlist/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	db      *database.Database
	store   WordStore
	version string

	// Optional; reported when set.
	snapshots SnapshotStore
	reset     ResetStatus
}

func NewHealthController(db *database.Database, store WordStore, version string) *HealthController {
	return &HealthController{
		db:      db,
		store:   store,
		version: version,
	}
}

// WithSnapshots adds the snapshot count to the health report.
func (h *HealthController) WithSnapshots(snapshots SnapshotStore) *HealthController {
	h.snapshots = snapshots
	return h
}

// WithResetStatus adds the scheduled reset to the health report.
func (h *HealthController) WithResetStatus(reset ResetStatus) *HealthController {
	h.reset = reset
	return h
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		sqlDB, err := h.db.DB.DB()
		if err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else if err := sqlDB.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	if h.store != nil && status == "healthy" {
		if total, err := h.store.Count(); err != nil {
			checks["words"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["words"] = strconv.FormatInt(total, 10)
		}
	}

	// Snapshot and reset problems are reported but never make the service unhealthy.
	if h.snapshots != nil {
		if names, err := h.snapshots.List(); err != nil {
			checks["snapshots"] = "error: " + err.Error()
		} else {
			checks["snapshots"] = strconv.Itoa(len(names))
		}
	}

	if h.reset != nil {
		lastRun, lastErr := h.reset.LastRun()
		switch {
		case lastRun.IsZero():
			checks["reset_last_run"] = "never"
		case lastErr != nil:
			checks["reset_last_run"] = lastRun.Format(time.RFC3339) + " failed: " + lastErr.Error()
		default:
			checks["reset_last_run"] = lastRun.Format(time.RFC3339) + " ok"
		}
		if next := h.reset.NextRunTime(); next != nil {
			checks["reset_next_run"] = next.Format(time.RFC3339)
		} else {
			checks["reset_next_run"] = "stopped"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
