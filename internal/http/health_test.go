package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordlist/internal/audit"
	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/database/words"
)

func setupHealthTestDB(t *testing.T) (*database.Database, *words.Repository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "health.db")
	db, err := database.NewDatabase(dbPath, 1, database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, words.NewRepository(db.DB)
}

func getHealth(t *testing.T, controller *HealthController) (int, HealthResponse) {
	t.Helper()

	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy with word count", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)

		code, response := getHealth(t, NewHealthController(db, repo, "1.0.0"))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "11", response.Checks["words"])
		assert.Contains(t, response.Time, "T")
	})

	t.Run("returns healthy when database is nil", func(t *testing.T) {
		code, response := getHealth(t, NewHealthController(nil, nil, "1.0.0"))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "not configured", response.Checks["database"])
	})

	t.Run("returns unhealthy when database connection is closed", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)
		require.NoError(t, db.Close())

		code, response := getHealth(t, NewHealthController(db, repo, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error")
	})

	t.Run("returns unhealthy when the word table is gone", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)
		require.NoError(t, db.DB.Exec("DROP TABLE word_entries").Error)

		code, response := getHealth(t, NewHealthController(db, repo, ""))

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Contains(t, response.Checks["words"], "error")
	})
}

type fakeResetStatus struct {
	lastRun time.Time
	lastErr error
	next    *time.Time
}

func (f fakeResetStatus) LastRun() (time.Time, error) { return f.lastRun, f.lastErr }
func (f fakeResetStatus) NextRunTime() *time.Time     { return f.next }

func TestHealthController_OptionalChecks(t *testing.T) {
	t.Run("reports snapshot count", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)
		auditor := audit.NewAuditor(t.TempDir())
		_, err := auditor.SaveJSON(map[string]string{"reason": "reset"})
		require.NoError(t, err)

		_, response := getHealth(t, NewHealthController(db, repo, "").WithSnapshots(auditor))

		assert.Equal(t, "1", response.Checks["snapshots"])
	})

	t.Run("reports scheduled reset", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)
		last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		next := last.Add(time.Hour)

		code, response := getHealth(t, NewHealthController(db, repo, "").
			WithResetStatus(fakeResetStatus{lastRun: last, next: &next}))

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "2024-05-01T10:00:00Z ok", response.Checks["reset_last_run"])
		assert.Equal(t, "2024-05-01T11:00:00Z", response.Checks["reset_next_run"])
	})

	t.Run("failed reset is reported without turning unhealthy", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)
		last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		code, response := getHealth(t, NewHealthController(db, repo, "").
			WithResetStatus(fakeResetStatus{lastRun: last, lastErr: errors.New("disk full")}))

		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, response.Checks["reset_last_run"], "failed: disk full")
		assert.Equal(t, "stopped", response.Checks["reset_next_run"])
	})

	t.Run("reset that never ran", func(t *testing.T) {
		db, repo := setupHealthTestDB(t)

		_, response := getHealth(t, NewHealthController(db, repo, "").WithResetStatus(fakeResetStatus{}))

		assert.Equal(t, "never", response.Checks["reset_last_run"])
	})
}
