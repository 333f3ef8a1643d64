package entities

// Column names of the word table. They are part of the on-disk contract.
const (
	ColumnID   = "_id"
	ColumnWord = "word"
)

// WordEntry is a single row of the word list.
// ID is assigned by the engine on insert and never changes afterwards.
type WordEntry struct {
	ID   int64  `gorm:"column:_id;primaryKey" json:"id"`
	Word string `gorm:"column:word" json:"word"`
}

func (WordEntry) TableName() string {
	return "word_entries"
}
