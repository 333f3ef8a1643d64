package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/wordlist/internal/auth"
	"github.com/mrlokans/wordlist/internal/config"
)

// HashTokenCommand prints the bcrypt hash to put in API_TOKEN_HASH.
type HashTokenCommand struct {
	Token    string
	Generate bool
	Cost     int

	Out io.Writer
}

func NewHashTokenCommand() *HashTokenCommand {
	return &HashTokenCommand{}
}

func (cmd *HashTokenCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("hash-token", flag.ExitOnError)

	fs.StringVar(&cmd.Token, "token", "", "API token to hash")
	fs.BoolVar(&cmd.Generate, "generate", false, "Generate a random token and print it with its hash")
	fs.IntVar(&cmd.Cost, "cost", config.NewConfig().Auth.BcryptCost, "bcrypt cost (defaults to API_TOKEN_BCRYPT_COST)")
	fs.Usage = usage(fs, "hash-token -token <token> [options]",
		"Print a bcrypt hash of the token for the API_TOKEN_HASH setting.",
		"hash-token -generate")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Token == "" && !cmd.Generate {
		return fmt.Errorf("either -token or -generate is required")
	}
	return nil
}

func (cmd *HashTokenCommand) Run() error {
	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	token := cmd.Token
	if cmd.Generate {
		generated, err := auth.GenerateToken()
		if err != nil {
			return err
		}
		token = generated
		fmt.Fprintf(out, "token: %s\n", token)
	}

	hash, err := auth.HashToken(token, cmd.Cost)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "hash:  %s\n", hash)
	return nil
}
