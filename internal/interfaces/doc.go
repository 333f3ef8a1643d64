// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - WordStore: Typed-error word operations used by the API (internal/http/stores.go)
//   - WordImporter: Atomic batch insert used by the import task (internal/tasks/import_words.go)
//
// Both are implemented by words.Repository. words.SentinelStore wraps the same
// repository for callers that expect sentinel return values instead of errors.
//
// ## Schema Lifecycle Interfaces
//
//   - Snapshotter: Receives rows before a destructive upgrade or reset (internal/database/database.go)
//   - Resetter: Rebuilds the seeded table (internal/http/stores.go, internal/scheduler/reset.go)
//
// ## Background Work Interfaces
//
//   - ImportQueue: Hands word batches to the task queue (internal/http/stores.go)
//
// # Adding a New Word Operation
//
//  1. Add the method to words.Repository, returning one of the package errors
//     (ErrConnection, ErrQuery, ErrNotFound, ErrInvalidArgument) wrapped with %w.
//
//  2. If legacy callers need it, add a SentinelStore method that logs the error
//     and returns a reserved value.
//
//  3. Extend WordStore in internal/http/stores.go and register the route in router.go.
//
// # Adding a New Background Task
//
//  1. Define the task type and its backlite.QueueConfig in internal/tasks/
//
//     type ExportWordsTask struct {
//         Path string `json:"path"`
//     }
//
//     func (t ExportWordsTask) Config() backlite.QueueConfig
//
//  2. Register its queue in entrypoint.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the checks in this module.
package interfaces
