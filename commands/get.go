package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gsheets/auth"
	"gsheets/sheet"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	area: "",
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a range from a Google Sheets worksheet and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets range to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets --debug get --credentials "credentials.json" \`)
	fmt.Println(`                        --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                        --range "Stations!A2:E" \`)
	fmt.Println(`                        --file "stations.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Worksheet range e.g. 'Stations!A2:E'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if cmd.debug {
		debugf("URL:%s  range:%s", cmd.url, cmd.area)
	}

	// ... authorise
	hc, err := cmd.authorize(auth.SheetsReadOnly)
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

	worksheet, err := spreadsheet.WorksheetByTitle(ctx, worksheetTitle(cmd.area))
	if err != nil {
		return fmt.Errorf("unable to open worksheet (%v)", err)
	}

	values, err := worksheet.Values(ctx, cmd.area)
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), "gsheets")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := sheetToTSV(tmp, values); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %s to file %s", cmd.area, cmd.file)

	return nil
}

// worksheetTitle extracts the worksheet title from a range like
// 'Stations!A2:E'.
func worksheetTitle(area string) string {
	if ix := strings.LastIndex(area, "!"); ix != -1 {
		return strings.Trim(area[:ix], "'")
	}

	return area
}
