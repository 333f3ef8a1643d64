// Package database owns the SQLite connection and the schema lifecycle of the
// word list.
//
// # Layout
//
//	database/
//	├── database.go      # Connection setup, schema versioning, seeding
//	└── words/           # Word list operations (Repository, SentinelStore, Cursor)
//
// # Schema Versions
//
// The requested version is compared with PRAGMA user_version on open:
//
//   - stored version 0: the table is created and seeded in one transaction
//   - stored version lower: Upgrade drops every row and reseeds
//   - stored version higher: NewDatabase fails with ErrDowngrade
//
// Upgrade and Reset hand the rows they are about to drop to the configured
// Snapshotter first. A snapshot failure aborts the operation.
//
// # Usage
//
//	db, err := database.NewDatabase("./wordlist.db", 1, database.Options{})
//	defer db.Close()
//
//	repo := words.NewRepository(db.DB)
//	total, err := repo.Count()
package database
