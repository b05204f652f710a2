package commands

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"gsheets/auth"
)

const APP = "gsheets"

// Options are the global command line options, shared by all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by the gsheets subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// command holds the options common to the subcommands that talk to the
// Sheets API.
type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google credentials file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for the cached OAuth tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&c.url, "url", c.url, "Spreadsheet URL")

	return flagset
}

// environ fills in options left at their defaults from the environment
// (typically loaded from a .env file by main).
func (c *command) environ() {
	if v := os.Getenv("GSHEETS_CREDENTIALS"); v != "" && c.credentials == DEFAULT_CREDENTIALS {
		c.credentials = v
	}

	if v := os.Getenv("GSHEETS_WORKDIR"); v != "" && c.workdir == DEFAULT_WORKDIR {
		c.workdir = v
	}

	if v := os.Getenv("GSHEETS_URL"); v != "" && c.url == "" {
		c.url = v
	}
}

// validate checks the options every API command requires.
func (c *command) validate() error {
	c.environ()

	if strings.TrimSpace(c.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(c.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	return nil
}

// authorize builds an HTTP client authorised for the given scope, caching
// OAuth tokens under the tokens directory.
func (c *command) authorize(scope string) (*http.Client, error) {
	tokens := c.tokens
	if tokens == "" {
		tokens = filepath.Join(c.workdir, ".google")
	}

	return auth.Authorize(c.credentials, scope, tokens)
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	logrus.Debugf(format, args...)
}

func infof(format string, args ...any) {
	logrus.Infof(format, args...)
}

func warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
}
