package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/wordlist/internal/database"
)

// UpgradeCommand runs the destructive schema upgrade: every row is dropped and
// the seed list restored at the new version.
type UpgradeCommand struct {
	storeFlags
	From int
	To   int
}

func NewUpgradeCommand() *UpgradeCommand {
	return &UpgradeCommand{}
}

func (cmd *UpgradeCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("upgrade", flag.ExitOnError)
	cmd.register(fs)
	fs.IntVar(&cmd.From, "from", 0, "Expected current schema version (optional; must match the file)")
	fs.IntVar(&cmd.To, "to", 0, "Target schema version (required)")
	fs.Usage = usage(fs, "upgrade -to <m> [-from <n>] [options]",
		"Drop all words and recreate the seeded table at the target version.\nThe target may not be lower than the version stored in the file.\nUse -audit-dir to keep a JSON copy of the dropped rows.",
		"upgrade -from 1 -to 2 -audit-dir ./audit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.To < 1 {
		return fmt.Errorf("-to must be at least 1")
	}
	if cmd.From < 0 {
		return fmt.Errorf("-from must not be negative")
	}
	return nil
}

func (cmd *UpgradeCommand) Run() error {
	stored, err := database.StoredVersion(cmd.DatabasePath)
	if err != nil {
		return err
	}
	if stored == 0 {
		return fmt.Errorf("%s has no word list to upgrade", cmd.DatabasePath)
	}
	if cmd.From != 0 && cmd.From != stored {
		return fmt.Errorf("stored schema version is %d, not %d", stored, cmd.From)
	}
	if cmd.To < stored {
		return fmt.Errorf("%w from version %d to %d", database.ErrDowngrade, stored, cmd.To)
	}

	// Opening at the stored version leaves the schema alone; Upgrade is the only
	// destructive step.
	db, err := cmd.openDatabase(stored)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Upgrade(stored, cmd.To); err != nil {
		return fmt.Errorf("failed to upgrade database: %w", err)
	}

	fmt.Fprintf(cmd.out(), "Upgraded %s from version %d to %d\n", db.Path(), stored, cmd.To)
	return nil
}

// ResetCommand restores the seed list without changing the schema version.
type ResetCommand struct {
	storeFlags
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	cmd.register(fs)
	fs.Usage = usage(fs, "reset [options]", "Drop all words and restore the seed list.")
	return fs.Parse(args)
}

func (cmd *ResetCommand) Run() error {
	db, err := cmd.openDatabase(cmd.Version)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	fmt.Fprintf(cmd.out(), "Reset %s to the seed list\n", db.Path())
	return nil
}
