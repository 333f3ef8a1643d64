// Package words provides the data access operations of the word list.
//
// Repository returns typed errors so callers can tell a missing row from a broken
// connection. SentinelStore wraps it for callers that expect the legacy sentinel
// values (zero entry, 0, -1, nil cursor) instead of errors.
//
// # Usage
//
//	db, err := database.NewDatabase("./wordlist.db", 1, database.Options{})
//	repo := words.NewRepository(db.DB)
//	entry, err := repo.QueryByPosition(0)
//	if errors.Is(err, words.ErrNotFound) { ... }
package words

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/wordlist/internal/entities"
)

var (
	// ErrConnection means the database handle could not be used (closed, unreachable).
	ErrConnection = errors.New("word store connection failed")
	// ErrQuery means the statement itself failed.
	ErrQuery = errors.New("word store query failed")
	// ErrNotFound means no row matched.
	ErrNotFound = errors.New("word not found")
	// ErrInvalidArgument means the request can never match, e.g. a negative position.
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	orderByWord      = entities.ColumnWord + " ASC"
	orderByID        = entities.ColumnID + " ASC"
	whereIDEquals    = entities.ColumnID + " = ?"
	whereWordContain = entities.ColumnWord + ` LIKE ? ESCAPE '\'`
)

// Repository handles all word list database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// conn verifies the underlying handle is still usable before running a statement.
func (r *Repository) conn() (*gorm.DB, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return r.db, nil
}

// QueryByPosition returns the entry at the zero-based rank when all words are
// sorted ascending. Entries with equal words keep insertion order.
func (r *Repository) QueryByPosition(position int) (entities.WordEntry, error) {
	if position < 0 {
		return entities.WordEntry{}, fmt.Errorf("%w: position %d is negative", ErrInvalidArgument, position)
	}

	db, err := r.conn()
	if err != nil {
		return entities.WordEntry{}, err
	}

	var found []entities.WordEntry
	err = db.Order(orderByWord).Order(orderByID).
		Limit(1).
		Offset(position).
		Find(&found).Error
	if err != nil {
		return entities.WordEntry{}, fmt.Errorf("%w: query position %d: %w", ErrQuery, position, err)
	}
	if len(found) == 0 {
		return entities.WordEntry{}, fmt.Errorf("%w: no word at position %d", ErrNotFound, position)
	}
	return found[0], nil
}

// Insert adds a word and returns its new id. Empty and duplicate words are accepted.
func (r *Repository) Insert(word string) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	entry := entities.WordEntry{Word: word}
	if err := db.Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("%w: insert %q: %w", ErrQuery, word, err)
	}
	return entry.ID, nil
}

// InsertMany adds all words in one transaction and returns their ids in order.
// Either every word is stored or none is.
func (r *Repository) InsertMany(words []string) ([]int64, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(words))
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, word := range words {
			entry := entities.WordEntry{Word: word}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("insert %q: %w", word, err)
			}
			ids = append(ids, entry.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return ids, nil
}

// Count returns the number of rows in the word table.
func (r *Repository) Count() (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := db.Model(&entities.WordEntry{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("%w: count: %w", ErrQuery, err)
	}
	return total, nil
}

// DeleteByID removes the row with the given id and returns how many rows went away.
func (r *Repository) DeleteByID(id int64) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	result := db.Where(whereIDEquals, id).Delete(&entities.WordEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("%w: delete %d: %w", ErrQuery, id, result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateByID replaces the word of the row with the given id and returns how many
// rows were updated (0 when no row has that id).
func (r *Repository) UpdateByID(id int64, word string) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	result := db.Model(&entities.WordEntry{}).
		Where(whereIDEquals, id).
		Update(entities.ColumnWord, word)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: update %d: %w", ErrQuery, id, result.Error)
	}
	return result.RowsAffected, nil
}

// Search opens a cursor over all entries whose word contains pattern, sorted
// ascending. The caller must Close the cursor, or drain it through All.
func (r *Repository) Search(pattern string) (*Cursor, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := db.Model(&entities.WordEntry{}).
		Where(whereWordContain, containsPattern(pattern)).
		Order(orderByWord).Order(orderByID)

	rows, err := query.Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %w", ErrQuery, pattern, err)
	}
	return newCursor(db, rows), nil
}

// SearchAll is Search with the result fully read into memory.
func (r *Repository) SearchAll(pattern string) ([]entities.WordEntry, error) {
	cursor, err := r.Search(pattern)
	if err != nil {
		return nil, err
	}

	found := []entities.WordEntry{}
	for entry, err := range cursor.All() {
		if err != nil {
			return nil, fmt.Errorf("%w: search %q: %w", ErrQuery, pattern, err)
		}
		found = append(found, entry)
	}
	return found, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a literal substring into a LIKE pattern.
func containsPattern(substring string) string {
	return "%" + likeEscaper.Replace(substring) + "%"
}
