package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/entities"
)

func TestSentinelStore_HappyPath(t *testing.T) {
	_, repo := setupTestDB(t)
	store := NewSentinelStore(repo)

	seeds := int64(len(database.SeedWords()))
	assert.Equal(t, seeds, store.Count())

	id := store.Insert("Gradle")
	assert.NotZero(t, id)
	assert.Equal(t, seeds+1, store.Count())

	assert.Equal(t, int64(1), store.Update(id, "Kotlin"))
	assert.Equal(t, int64(0), store.Update(9999, "Kotlin"))

	first := store.Query(0)
	assert.Equal(t, "Adapter", first.Word)

	cursor := store.Search("Kotlin")
	require.NotNil(t, cursor)
	require.True(t, cursor.Next())
	assert.Equal(t, entities.WordEntry{ID: id, Word: "Kotlin"}, cursor.Entry())
	assert.False(t, cursor.Next())
	require.NoError(t, cursor.Close())

	assert.Equal(t, int64(1), store.Delete(id))
	assert.Equal(t, int64(0), store.Delete(id))
}

func TestSentinelStore_OutOfRangeQueryReturnsZeroEntry(t *testing.T) {
	_, repo := setupTestDB(t)
	store := NewSentinelStore(repo)

	assert.Equal(t, entities.WordEntry{}, store.Query(1000))
	assert.Equal(t, entities.WordEntry{}, store.Query(-1))
}

func TestSentinelStore_FailuresMapToSentinels(t *testing.T) {
	db, repo := setupTestDB(t)
	store := NewSentinelStore(repo)
	require.NoError(t, db.Close())

	assert.Equal(t, entities.WordEntry{}, store.Query(0))
	assert.Equal(t, InsertFailed, store.Insert("x"))
	assert.Equal(t, CountFailed, store.Count())
	assert.Equal(t, DeleteFailed, store.Delete(1))
	assert.Equal(t, UpdateFailed, store.Update(1, "x"))
	assert.Nil(t, store.Search("x"))
}
