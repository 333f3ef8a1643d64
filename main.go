package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/wordlist/internal/cli"
	"github.com/mrlokans/wordlist/internal/config"
	"github.com/mrlokans/wordlist/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type runner interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "count":
		run(cli.NewCountCommand(), args)
	case "query":
		run(cli.NewQueryCommand(), args)
	case "insert":
		run(cli.NewInsertCommand(), args)
	case "update":
		run(cli.NewUpdateCommand(), args)
	case "delete":
		run(cli.NewDeleteCommand(), args)
	case "search":
		run(cli.NewSearchCommand(), args)
	case "upgrade":
		run(cli.NewUpgradeCommand(), args)
	case "reset":
		run(cli.NewResetCommand(), args)
	case "hash-token":
		run(cli.NewHashTokenCommand(), args)

	case "-h", "--help", "help":
		printUsage()

	case "version":
		fmt.Printf("wordlist %s (%s)\n", Version, Commit)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(cmd runner, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve       Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  count       Print the number of words\n")
	fmt.Fprintf(os.Stderr, "  query       Print the word at a sorted position\n")
	fmt.Fprintf(os.Stderr, "  insert      Add a word\n")
	fmt.Fprintf(os.Stderr, "  update      Replace the word stored under an id\n")
	fmt.Fprintf(os.Stderr, "  delete      Delete a word by id\n")
	fmt.Fprintf(os.Stderr, "  search      List words containing a substring\n")
	fmt.Fprintf(os.Stderr, "  upgrade     Drop all words and reseed at a new schema version\n")
	fmt.Fprintf(os.Stderr, "  reset       Drop all words and reseed at the current schema version\n")
	fmt.Fprintf(os.Stderr, "  hash-token  Hash an API token for API_TOKEN_HASH\n")
	fmt.Fprintf(os.Stderr, "  version     Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
