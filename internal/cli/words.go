package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/wordlist/internal/database/words"
)

// CountCommand prints the number of stored words.
type CountCommand struct {
	storeFlags
}

func NewCountCommand() *CountCommand {
	return &CountCommand{}
}

func (cmd *CountCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	cmd.register(fs)
	fs.Usage = usage(fs, "count [options]", "Print the number of words in the list.")
	return fs.Parse(args)
}

func (cmd *CountCommand) Run() error {
	return cmd.withStore(func(store *words.SentinelStore) error {
		fmt.Fprintln(cmd.out(), store.Count())
		return nil
	})
}

// QueryCommand prints the word at a sorted position.
type QueryCommand struct {
	storeFlags
	Position int
}

func NewQueryCommand() *QueryCommand {
	return &QueryCommand{}
}

func (cmd *QueryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	cmd.register(fs)
	fs.IntVar(&cmd.Position, "position", 0, "Zero-based position in alphabetical order")
	fs.Usage = usage(fs, "query -position <n> [options]",
		"Print the id and word at the given position of the alphabetically sorted list.",
		"query -position 0")
	return fs.Parse(args)
}

func (cmd *QueryCommand) Run() error {
	return cmd.withStore(func(store *words.SentinelStore) error {
		entry := store.Query(cmd.Position)
		if entry.ID == 0 {
			return fmt.Errorf("no word at position %d", cmd.Position)
		}
		fmt.Fprintf(cmd.out(), "%d\t%s\n", entry.ID, entry.Word)
		return nil
	})
}

// InsertCommand adds a word and prints its id.
type InsertCommand struct {
	storeFlags
	Word    string
	wordSet bool
}

func NewInsertCommand() *InsertCommand {
	return &InsertCommand{}
}

func (cmd *InsertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("insert", flag.ExitOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Word, "word", "", "Word to add (may be empty when given explicitly)")
	fs.Usage = usage(fs, "insert -word <word> [options]", "Add a word to the list and print its id.",
		`insert -word "Jetpack Compose"`)

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.wordSet = flagWasSet(fs, "word")
	if !cmd.wordSet {
		return fmt.Errorf("required flag -word not provided")
	}
	return nil
}

func (cmd *InsertCommand) Run() error {
	return cmd.withStore(func(store *words.SentinelStore) error {
		id := store.Insert(cmd.Word)
		if id == words.InsertFailed {
			return fmt.Errorf("failed to insert %q", cmd.Word)
		}
		fmt.Fprintln(cmd.out(), id)
		return nil
	})
}

// UpdateCommand replaces the word stored under an id.
type UpdateCommand struct {
	storeFlags
	ID   int64
	Word string
}

func NewUpdateCommand() *UpdateCommand {
	return &UpdateCommand{}
}

func (cmd *UpdateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	cmd.register(fs)
	fs.Int64Var(&cmd.ID, "id", 0, "Row id to update (required)")
	fs.StringVar(&cmd.Word, "word", "", "New word")
	fs.Usage = usage(fs, "update -id <id> -word <word> [options]", "Replace the word of one row and print the number of rows updated.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ID == 0 {
		return fmt.Errorf("required flag -id not provided")
	}
	if !flagWasSet(fs, "word") {
		return fmt.Errorf("required flag -word not provided")
	}
	return nil
}

func (cmd *UpdateCommand) Run() error {
	return cmd.withStore(func(store *words.SentinelStore) error {
		updated := store.Update(cmd.ID, cmd.Word)
		if updated == words.UpdateFailed {
			return fmt.Errorf("failed to update row %d", cmd.ID)
		}
		fmt.Fprintln(cmd.out(), updated)
		return nil
	})
}

// DeleteCommand removes a row by id and prints how many rows went away.
type DeleteCommand struct {
	storeFlags
	ID int64
}

func NewDeleteCommand() *DeleteCommand {
	return &DeleteCommand{}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	cmd.register(fs)
	fs.Int64Var(&cmd.ID, "id", 0, "Row id to delete (required)")
	fs.Usage = usage(fs, "delete -id <id> [options]", "Delete one row and print the number of rows deleted.")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ID == 0 {
		return fmt.Errorf("required flag -id not provided")
	}
	return nil
}

// Run prints 0 both when the id is unknown and when the delete failed; the
// failure is logged.
func (cmd *DeleteCommand) Run() error {
	return cmd.withStore(func(store *words.SentinelStore) error {
		fmt.Fprintln(cmd.out(), store.Delete(cmd.ID))
		return nil
	})
}

// SearchCommand prints every word containing a substring.
type SearchCommand struct {
	storeFlags
	Pattern string
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Pattern, "pattern", "", "Substring to look for (empty lists every word)")
	fs.Usage = usage(fs, "search -pattern <text> [options]",
		"Print id and word of every entry containing the text, in alphabetical order.\n% and _ match literally.",
		"search -pattern Android")
	return fs.Parse(args)
}

func (cmd *SearchCommand) Run() error {
	return cmd.withStore(func(store *words.SentinelStore) error {
		cursor := store.Search(cmd.Pattern)
		if cursor == nil {
			return fmt.Errorf("search for %q failed", cmd.Pattern)
		}

		for entry, err := range cursor.All() {
			if err != nil {
				return fmt.Errorf("failed to read results: %w", err)
			}
			fmt.Fprintf(cmd.out(), "%d\t%s\n", entry.ID, entry.Word)
		}
		return nil
	})
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
