package commands

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"gsheets/auth"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	scope: "sheets",
}

type Authorise struct {
	command
	scope string
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises gsheets to access Google Sheets and Google Drive"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file> --scope <sheets|drive>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Runs the OAuth2 consent flow and caches the tokens for later commands")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets authorise --credentials "credentials.json" --scope sheets`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the Google credentials file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the cached OAuth tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&cmd.scope, "scope", cmd.scope, "Authorisation scope: 'sheets' or 'drive'")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug
	cmd.environ()

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	scopes := map[string]string{
		"sheets": auth.Sheets,
		"drive":  auth.Drive,
	}

	scope, ok := scopes[strings.ToLower(cmd.scope)]
	if !ok {
		return fmt.Errorf("invalid scope '%s' - expected 'sheets' or 'drive'", cmd.scope)
	}

	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	if _, err := auth.Authorize(cmd.credentials, scope, tokens); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	infof("Authorised %s access", cmd.scope)

	return nil
}
