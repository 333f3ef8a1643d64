package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordlist/internal/entities"
)

var (
	// ErrInvalidVersion is returned when a schema version below 1 is requested.
	ErrInvalidVersion = errors.New("schema version must be at least 1")

	// ErrDowngrade is returned when the file carries a newer schema than requested.
	ErrDowngrade = errors.New("can't downgrade database")
)

// seedWords is inserted, in this order, whenever the table is (re)created.
var seedWords = []string{
	"Android", "Adapter", "ListView", "AsyncTask",
	"Android Studio", "SQLiteDatabase", "SQLOpenHelper",
	"Data model", "ViewHolder", "Android Performance",
	"OnClickListener",
}

var createWordTableSQL = "CREATE TABLE " + entities.WordEntry{}.TableName() + " (" +
	entities.ColumnID + " INTEGER PRIMARY KEY, " +
	entities.ColumnWord + " TEXT)"

var dropWordTableSQL = "DROP TABLE IF EXISTS " + entities.WordEntry{}.TableName()

// SeedWords returns a copy of the words every fresh table starts with.
func SeedWords() []string {
	words := make([]string, len(seedWords))
	copy(words, seedWords)
	return words
}

// Snapshotter persists rows that are about to be destroyed.
// *audit.Auditor satisfies it.
type Snapshotter interface {
	SaveJSON(data any) (string, error)
}

// DroppedRows is the payload handed to the Snapshotter before the table is dropped.
type DroppedRows struct {
	Reason      string               `json:"reason"`
	FromVersion int                  `json:"from_version"`
	ToVersion   int                  `json:"to_version"`
	TakenAt     time.Time            `json:"taken_at"`
	Rows        []entities.WordEntry `json:"rows"`
}

type Database struct {
	DB *gorm.DB

	path        string
	snapshotter Snapshotter
}

// Options tweak how NewDatabase opens the file. The zero value is usable.
type Options struct {
	// Snapshotter, when set, receives the rows before every destructive upgrade or reset.
	Snapshotter Snapshotter
	// LogLevel for gorm's SQL logger. Defaults to logger.Warn.
	LogLevel logger.LogLevel
}

// NewDatabase opens the word list at dbPath and brings its schema to version.
//
// A file without a schema gets the word table and the seed words. A file with an
// older schema is upgraded, which destroys its rows. A newer schema is refused.
// Any failure closes the handle and is returned to the caller.
func NewDatabase(dbPath string, version int, opts Options) (*Database, error) {
	if version < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVersion, version)
	}

	logLevel := opts.LogLevel
	if logLevel == 0 {
		logLevel = logger.Warn
	}

	db, err := open(dbPath, logLevel)
	if err != nil {
		return nil, err
	}

	database := &Database{
		DB:          db,
		path:        dbPath,
		snapshotter: opts.Snapshotter,
	}

	if err := database.ensureSchema(version); err != nil {
		_ = database.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully at %s (schema version %d)", dbPath, version)

	return database, nil
}

// WAL lets an open search cursor on one pooled connection coexist with writes
// on another.
func open(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_journal=WAL&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// StoredVersion reads the schema version of the file at dbPath without touching
// its schema. A missing file is reported as an error rather than created.
func StoredVersion(dbPath string) (int, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return 0, fmt.Errorf("failed to stat database: %w", err)
	}

	db, err := open(dbPath, logger.Silent)
	if err != nil {
		return 0, err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	version, err := readUserVersion(db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.path
}

// Version returns the schema version recorded in the file, 0 for a fresh file.
func (d *Database) Version() (int, error) {
	return readUserVersion(d.DB)
}

func (d *Database) ensureSchema(version int) error {
	current, err := d.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	switch {
	case current == version:
		return nil
	case current == 0:
		if err := d.DB.Transaction(func(tx *gorm.DB) error {
			if err := createSchema(tx); err != nil {
				return err
			}
			return writeUserVersion(tx, version)
		}); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		return nil
	case current < version:
		return d.Upgrade(current, version)
	default:
		return fmt.Errorf("%w from version %d to %d", ErrDowngrade, current, version)
	}
}

// Upgrade drops the word table and recreates it with the seed words, then records
// newVersion. All existing rows are lost; there is no migration path.
// newVersion must not be lower than oldVersion.
func (d *Database) Upgrade(oldVersion, newVersion int) error {
	if newVersion < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidVersion, newVersion)
	}
	if newVersion < oldVersion {
		return fmt.Errorf("%w from version %d to %d", ErrDowngrade, oldVersion, newVersion)
	}

	log.Printf("WARNING: Upgrading database from version %d to %d, which will destroy all old data",
		oldVersion, newVersion)

	if err := d.snapshot("upgrade", oldVersion, newVersion); err != nil {
		return err
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := recreateSchema(tx); err != nil {
			return err
		}
		return writeUserVersion(tx, newVersion)
	})
	if err != nil {
		return fmt.Errorf("failed to upgrade schema from %d to %d: %w", oldVersion, newVersion, err)
	}
	return nil
}

// Reset drops every row and reseeds the table, keeping the schema version.
func (d *Database) Reset() error {
	version, err := d.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Printf("Resetting word list to %d seed words", len(seedWords))

	if err := d.snapshot("reset", version, version); err != nil {
		return err
	}

	if err := d.DB.Transaction(recreateSchema); err != nil {
		return fmt.Errorf("failed to reset word list: %w", err)
	}
	return nil
}

// snapshot hands the current rows to the snapshotter. A missing table is not an error.
func (d *Database) snapshot(reason string, from, to int) error {
	if d.snapshotter == nil {
		return nil
	}
	if !d.DB.Migrator().HasTable(&entities.WordEntry{}) {
		return nil
	}

	var rows []entities.WordEntry
	if err := d.DB.Order(entities.ColumnID + " ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to read rows for snapshot: %w", err)
	}

	name, err := d.snapshotter.SaveJSON(DroppedRows{
		Reason:      reason,
		FromVersion: from,
		ToVersion:   to,
		TakenAt:     time.Now().UTC(),
		Rows:        rows,
	})
	if err != nil {
		return fmt.Errorf("failed to snapshot rows before %s: %w", reason, err)
	}

	log.Printf("Saved %d rows to snapshot %s before %s", len(rows), name, reason)
	return nil
}

func recreateSchema(tx *gorm.DB) error {
	if err := tx.Exec(dropWordTableSQL).Error; err != nil {
		return fmt.Errorf("failed to drop word table: %w", err)
	}
	return createSchema(tx)
}

func createSchema(tx *gorm.DB) error {
	if err := tx.Exec(createWordTableSQL).Error; err != nil {
		return fmt.Errorf("failed to create word table: %w", err)
	}
	return seed(tx)
}

func seed(tx *gorm.DB) error {
	for _, word := range seedWords {
		entry := entities.WordEntry{Word: word}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to seed word %q: %w", word, err)
		}
	}
	return nil
}

func readUserVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw("PRAGMA user_version").Row().Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func writeUserVersion(tx *gorm.DB, version int) error {
	if err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)).Error; err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}
