package config

const (
	// DefaultDatabasePath is the default location of the word list database
	DefaultDatabasePath = "./wordlist.db"

	// DefaultSchemaVersion is the schema version requested when none is configured.
	// Raising it destroys and reseeds existing word lists.
	DefaultSchemaVersion = 1

	// DefaultBcryptCost is used when hashing API tokens
	DefaultBcryptCost = 12
)
