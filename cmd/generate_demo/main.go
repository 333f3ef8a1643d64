// Command generate_demo creates a demo word list for DEMO_MODE deployments.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordlist/internal/config"
	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/database/words"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// demoWords extends the seed list with terms a demo visitor can search for.
var demoWords = []string{
	"Activity",
	"Fragment",
	"Intent",
	"RecyclerView",
	"ConstraintLayout",
	"ViewModel",
	"LiveData",
	"Room",
	"WorkManager",
	"Jetpack Compose",
	"Gradle",
	"Kotlin Coroutines",
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	version := flag.Int("version", config.DefaultSchemaVersion, "schema version of the demo database")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, *version, database.Options{LogLevel: logger.Silent})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := words.NewRepository(db.DB)
	ids, err := repo.InsertMany(demoWords)
	if err != nil {
		log.Fatalf("Failed to add demo words: %v", err)
	}

	total, err := repo.Count()
	if err != nil {
		log.Fatalf("Failed to count words: %v", err)
	}

	log.Printf("Added %d demo words (%d total)", len(ids), total)
	log.Printf("Serve it read-only with: DEMO_MODE=true DATABASE_PATH=%s", *dbPath)
}
