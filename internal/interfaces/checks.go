package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wordlist/internal/audit"
	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/database/words"
	"github.com/mrlokans/wordlist/internal/http"
	"github.com/mrlokans/wordlist/internal/scheduler"
	"github.com/mrlokans/wordlist/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.WordStore = (*words.Repository)(nil)
var _ tasks.WordImporter = (*words.Repository)(nil)

// =============================================================================
// Schema Lifecycle
// =============================================================================

var _ database.Snapshotter = (*audit.Auditor)(nil)
var _ http.Resetter = (*database.Database)(nil)
var _ scheduler.Resetter = (*database.Database)(nil)
var _ http.SnapshotStore = (*audit.Auditor)(nil)
var _ http.ResetStatus = (*scheduler.ResetScheduler)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ http.ImportQueue = (*tasks.Client)(nil)
