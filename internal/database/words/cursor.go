package words

import (
	"database/sql"
	"iter"

	"gorm.io/gorm"

	"github.com/mrlokans/wordlist/internal/entities"
)

// Cursor is a forward-only, single-pass view over a search result.
//
// Either call Next/Entry until Next reports false and then Close, or range over
// All, which closes the cursor on every exit path.
type Cursor struct {
	db     *gorm.DB
	rows   *sql.Rows
	entry  entities.WordEntry
	err    error
	closed bool
}

func newCursor(db *gorm.DB, rows *sql.Rows) *Cursor {
	return &Cursor{db: db, rows: rows}
}

// Next advances to the following entry. It returns false at the end of the
// result or on the first error; check Err afterwards.
func (c *Cursor) Next() bool {
	if c.closed || c.err != nil {
		return false
	}
	if !c.rows.Next() {
		c.err = c.rows.Err()
		return false
	}

	var entry entities.WordEntry
	if err := c.db.ScanRows(c.rows, &entry); err != nil {
		c.err = err
		return false
	}
	c.entry = entry
	return true
}

// Entry returns the entry the last successful Next moved to.
func (c *Cursor) Entry() entities.WordEntry {
	return c.entry
}

// Err returns the error that stopped iteration, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Close releases the underlying rows. It is safe to call more than once.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.rows.Close()
}

// All yields every remaining entry. The cursor is closed when the loop ends,
// whether it ran to completion, hit an error, or was broken out of early.
// A scan error is yielded once as the last pair.
func (c *Cursor) All() iter.Seq2[entities.WordEntry, error] {
	return func(yield func(entities.WordEntry, error) bool) {
		defer c.Close()

		for c.Next() {
			if !yield(c.entry, nil) {
				return
			}
		}
		if c.err != nil {
			yield(entities.WordEntry{}, c.err)
		}
	}
}
