package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"gsheets/auth"
	"gsheets/sheet"
)

var PutCmd = Put{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	area: "",
	file: "",
}

type Put struct {
	command
	area string
	file string
	raw  bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a local TSV file to a Google Sheets worksheet range"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV file to a Google Sheets range")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets --debug put --credentials "credentials.json" \`)
	fmt.Println(`                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                        --range "Stations!A1" \`)
	fmt.Println(`                        --file "stations.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Worksheet range e.g. 'Stations!A1'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file to upload")
	flagset.BoolVar(&cmd.raw, "raw", cmd.raw, "Stores values as-is, without interpreting formulas, numbers or dates")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	if cmd.debug {
		debugf("URL:%s  range:%s  file:%s", cmd.url, cmd.area, cmd.file)
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	values, err := tsvToSheet(f)
	if err != nil {
		return fmt.Errorf("error reading TSV file (%v)", err)
	}

	// ... authorise
	hc, err := cmd.authorize(auth.Sheets)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	ctx := context.Background()

	client, err := sheet.NewClient(ctx, sheet.WithHTTPClient(hc))
	if err != nil {
		return fmt.Errorf("unable to create Sheets client (%v)", err)
	}

	spreadsheet, err := client.OpenByURL(ctx, cmd.url)
	if err != nil {
		return fmt.Errorf("unable to open spreadsheet (%v)", err)
	}

	spreadsheet.SetDefaultParse(!cmd.raw)

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, worksheetTitle(cmd.area))
	if err != nil {
		return fmt.Errorf("unable to open worksheet (%v)", err)
	}

	if err := worksheet.UpdateValues(ctx, cmd.area, values); err != nil {
		return fmt.Errorf("unable to update sheet (%v)", err)
	}

	infof("Uploaded %s to %s", cmd.file, cmd.area)

	return nil
}
