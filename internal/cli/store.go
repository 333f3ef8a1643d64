package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordlist/internal/audit"
	"github.com/mrlokans/wordlist/internal/config"
	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/database/words"
)

// storeFlags are shared by every command that opens the word list.
type storeFlags struct {
	DatabasePath string
	Version      int
	AuditDir     string
	Verbose      bool

	// Out receives command output. Defaults to stdout.
	Out io.Writer
}

func (f *storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.DatabasePath, "db", config.DefaultDatabasePath, "Path to the word list database")
	fs.IntVar(&f.Version, "version", config.DefaultSchemaVersion, "Schema version to open the database at")
	fs.StringVar(&f.AuditDir, "audit-dir", "", "Directory for JSON snapshots of rows dropped by upgrade or reset")
	fs.BoolVar(&f.Verbose, "verbose", false, "Log every SQL statement")
}

func (f *storeFlags) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *storeFlags) openDatabase(version int) (*database.Database, error) {
	opts := database.Options{LogLevel: logger.Silent}
	if f.Verbose {
		opts.LogLevel = logger.Info
	}
	if f.AuditDir != "" {
		opts.Snapshotter = audit.NewAuditor(f.AuditDir)
	}

	db, err := database.NewDatabase(f.DatabasePath, version, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// withStore opens the database at the requested version and hands the legacy
// sentinel store to fn.
func (f *storeFlags) withStore(fn func(store *words.SentinelStore) error) error {
	db, err := f.openDatabase(f.Version)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(words.NewSentinelStore(words.NewRepository(db.DB)))
}

func usage(fs *flag.FlagSet, synopsis, description string, examples ...string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s\n\n", os.Args[0], synopsis)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		if len(examples) == 0 {
			return
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		for _, example := range examples {
			fmt.Fprintf(os.Stderr, "  %s %s\n", os.Args[0], example)
		}
	}
}
