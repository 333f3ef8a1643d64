package http

import (
	"github.com/mrlokans/wordlist/internal/auth"
	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/demo"
)

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Database *database.Database
	Store    WordStore

	// Optional. Imports answer 503 without a queue.
	ImportQueue ImportQueue

	// Optional. The reset route is not registered without it.
	Resetter Resetter

	// Optional. Snapshot routes and the health snapshot count need it.
	Snapshots SnapshotStore

	// Optional. Reported by /health when a reset schedule is configured.
	ResetStatus ResetStatus

	// Optional guards applied to every route.
	WriteGuard     *auth.WriteGuard
	DemoMiddleware *demo.Middleware

	Version string
}
