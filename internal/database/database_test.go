package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordlist/internal/entities"
)

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "wordlist.db")
}

func openTestDB(t *testing.T, path string, version int, snapshotter Snapshotter) *Database {
	t.Helper()
	db, err := NewDatabase(path, version, Options{Snapshotter: snapshotter, LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *Database) int64 {
	t.Helper()
	var total int64
	require.NoError(t, db.DB.Model(&entities.WordEntry{}).Count(&total).Error)
	return total
}

func allWords(t *testing.T, db *Database) []string {
	t.Helper()
	var rows []entities.WordEntry
	require.NoError(t, db.DB.Order("_id ASC").Find(&rows).Error)
	words := make([]string, len(rows))
	for i, r := range rows {
		words[i] = r.Word
	}
	return words
}

type recordingSnapshotter struct {
	saved []DroppedRows
	err   error
}

func (r *recordingSnapshotter) SaveJSON(data any) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.saved = append(r.saved, data.(DroppedRows))
	return "snapshot.json", nil
}

func TestNewDatabase_CreatesAndSeeds(t *testing.T) {
	db := openTestDB(t, testDBPath(t), 1, nil)

	assert.Equal(t, int64(len(SeedWords())), countRows(t, db))
	assert.Equal(t, SeedWords(), allWords(t, db))

	version, err := db.Version()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewDatabase_TableContract(t *testing.T) {
	db := openTestDB(t, testDBPath(t), 1, nil)

	rows, err := db.DB.Raw("PRAGMA table_info(word_entries)").Rows()
	require.NoError(t, err)
	defer rows.Close()

	type column struct {
		name, typ string
		pk        int
	}
	var columns []column
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		columns = append(columns, column{name: name, typ: typ, pk: pk})
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []column{
		{name: "_id", typ: "INTEGER", pk: 1},
		{name: "word", typ: "TEXT", pk: 0},
	}, columns)
}

func TestNewDatabase_ReopenSameVersionKeepsRows(t *testing.T) {
	path := testDBPath(t)

	db, err := NewDatabase(path, 1, Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&entities.WordEntry{Word: "Gradle"}).Error)
	require.NoError(t, db.Close())

	reopened := openTestDB(t, path, 1, nil)
	assert.Equal(t, int64(len(SeedWords())+1), countRows(t, reopened))
	assert.Contains(t, allWords(t, reopened), "Gradle")
}

func TestNewDatabase_HigherVersionUpgradesDestructively(t *testing.T) {
	path := testDBPath(t)

	db, err := NewDatabase(path, 1, Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&entities.WordEntry{Word: "Gradle"}).Error)
	require.NoError(t, db.DB.Where("word = ?", "Android").Delete(&entities.WordEntry{}).Error)
	require.NoError(t, db.Close())

	snapshots := &recordingSnapshotter{}
	upgraded := openTestDB(t, path, 2, snapshots)

	assert.Equal(t, SeedWords(), allWords(t, upgraded))
	version, err := upgraded.Version()
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	require.Len(t, snapshots.saved, 1)
	assert.Equal(t, "upgrade", snapshots.saved[0].Reason)
	assert.Equal(t, 1, snapshots.saved[0].FromVersion)
	assert.Equal(t, 2, snapshots.saved[0].ToVersion)
	assert.Len(t, snapshots.saved[0].Rows, len(SeedWords()))
}

func TestNewDatabase_RefusesDowngrade(t *testing.T) {
	path := testDBPath(t)

	db, err := NewDatabase(path, 3, Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewDatabase(path, 2, Options{LogLevel: logger.Silent})
	assert.True(t, errors.Is(err, ErrDowngrade))
}

func TestNewDatabase_InvalidVersion(t *testing.T) {
	_, err := NewDatabase(testDBPath(t), 0, Options{})
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestNewDatabase_UnwritableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "wordlist.db")

	_, err := NewDatabase(path, 1, Options{LogLevel: logger.Silent})
	assert.Error(t, err)
}

func TestUpgrade_AnyVersionPairReseeds(t *testing.T) {
	pairs := []struct {
		name     string
		from, to int
	}{
		{"next version", 1, 2},
		{"skipping versions", 1, 7},
		{"same version", 4, 4},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			db := openTestDB(t, testDBPath(t), 1, nil)

			for _, w := range []string{"Gradle", "Kotlin", "Gradle"} {
				require.NoError(t, db.DB.Create(&entities.WordEntry{Word: w}).Error)
			}
			require.NoError(t, db.DB.Model(&entities.WordEntry{}).Where("word = ?", "Adapter").Update("word", "Changed").Error)

			require.NoError(t, db.Upgrade(tc.from, tc.to))

			assert.Equal(t, SeedWords(), allWords(t, db))
			version, err := db.Version()
			require.NoError(t, err)
			assert.Equal(t, tc.to, version)
		})
	}
}

func TestUpgrade_RefusesLowerVersion(t *testing.T) {
	snapshots := &recordingSnapshotter{}
	db := openTestDB(t, testDBPath(t), 3, snapshots)
	require.NoError(t, db.DB.Create(&entities.WordEntry{Word: "Gradle"}).Error)

	err := db.Upgrade(3, 1)
	assert.ErrorIs(t, err, ErrDowngrade)

	assert.Contains(t, allWords(t, db), "Gradle")
	assert.Empty(t, snapshots.saved)
	version, err := db.Version()
	require.NoError(t, err)
	assert.Equal(t, 3, version)
}

func TestStoredVersion(t *testing.T) {
	path := testDBPath(t)

	_, err := StoredVersion(path)
	assert.Error(t, err, "a missing file is not created")
	assert.NoFileExists(t, path)

	db := openTestDB(t, path, 4, nil)
	require.NoError(t, db.DB.Create(&entities.WordEntry{Word: "Gradle"}).Error)

	version, err := StoredVersion(path)
	require.NoError(t, err)
	assert.Equal(t, 4, version)
	assert.Contains(t, allWords(t, db), "Gradle")
}

func TestUpgrade_SnapshotFailureKeepsData(t *testing.T) {
	path := testDBPath(t)
	snapshots := &recordingSnapshotter{}
	db := openTestDB(t, path, 1, snapshots)
	require.NoError(t, db.DB.Create(&entities.WordEntry{Word: "Gradle"}).Error)

	snapshots.err = errors.New("disk full")
	err := db.Upgrade(1, 2)
	require.Error(t, err)

	assert.Contains(t, allWords(t, db), "Gradle")
	version, err := db.Version()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestReset_KeepsVersion(t *testing.T) {
	snapshots := &recordingSnapshotter{}
	db := openTestDB(t, testDBPath(t), 3, snapshots)
	require.NoError(t, db.DB.Create(&entities.WordEntry{Word: "Gradle"}).Error)

	require.NoError(t, db.Reset())

	assert.Equal(t, SeedWords(), allWords(t, db))
	version, err := db.Version()
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	require.Len(t, snapshots.saved, 1)
	assert.Equal(t, "reset", snapshots.saved[0].Reason)
	assert.Len(t, snapshots.saved[0].Rows, len(SeedWords())+1)
}

func TestSeedWords_ReturnsCopy(t *testing.T) {
	words := SeedWords()
	require.Len(t, words, 11)
	words[0] = "mutated"

	assert.Equal(t, "Android", SeedWords()[0])
}
