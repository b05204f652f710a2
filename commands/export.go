package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gsheets/auth"
	"gsheets/sheet"
)

var ExportCmd = Export{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	worksheet: "",
	format:    "csv",
	file:      "",
}

type Export struct {
	command
	worksheet string
	format    string
	file      string
}

func (cmd *Export) Name() string {
	return "export"
}

func (cmd *Export) Description() string {
	return "Exports a spreadsheet (or a single worksheet) to a local file"
}

func (cmd *Export) Usage() string {
	return "--credentials <file> --url <url> --format <csv|tsv|xlsx|pdf|ods> --file <file>"
}

func (cmd *Export) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] export [options] --url <URL> --format <format> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Exports a spreadsheet to a local file. csv, tsv and xlsx exports of a single")
	fmt.Println("  worksheet are rendered locally; everything else is converted by Google Drive")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    gsheets export --credentials "credentials.json" \`)
	fmt.Println(`                   --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                   --worksheet "Stations" \`)
	fmt.Println(`                   --format csv \`)
	fmt.Println(`                   --file "stations.csv"`)
	fmt.Println()
}

func (cmd *Export) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("export")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet title. Defaults to the first worksheet for csv/tsv/xlsx")
	flagset.StringVar(&cmd.format, "format", cmd.format, "Export format: csv, tsv, xlsx, pdf or ods")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Output file name. Defaults to the spreadsheet title")

	return flagset
}

func (cmd *Export) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if err := cmd.validate(); err != nil {
		return err
	}

	// ... authorise
	hc, err := cmd.authorize(auth.DriveReadOnly + " " + auth.SheetsReadOnly)
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

	file := cmd.file
	if file == "" {
		file = spreadsheet.Title() + "." + strings.ToLower(cmd.format)
	}

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	if err := cmd.export(ctx, spreadsheet, f); err != nil {
		os.Remove(file)
		return err
	}

	infof("Exported %s to %s", spreadsheet.Title(), file)

	return nil
}

func (cmd *Export) export(ctx context.Context, spreadsheet *sheet.Spreadsheet, f *os.File) error {
	// csv/tsv/xlsx of a single worksheet are rendered locally
	local := map[string]func(*sheet.Worksheet) error{
		"csv":  func(w *sheet.Worksheet) error { return w.ExportCSV(ctx, f) },
		"tsv":  func(w *sheet.Worksheet) error { return w.ExportTSV(ctx, f) },
		"xlsx": func(w *sheet.Worksheet) error { return w.ExportXLSX(ctx, f) },
	}

	if render, ok := local[strings.ToLower(cmd.format)]; ok {
		worksheet, err := cmd.pick(ctx, spreadsheet)
		if err != nil {
			return err
		}

		return render(worksheet)
	}

	formats := map[string]sheet.ExportFormat{
		"pdf":  sheet.ExportPDF,
		"ods":  sheet.ExportODS,
		"html": sheet.ExportHTML,
	}

	format, ok := formats[strings.ToLower(cmd.format)]
	if !ok {
		return fmt.Errorf("unsupported export format '%s'", cmd.format)
	}

	return spreadsheet.Export(ctx, format, f)
}

func (cmd *Export) pick(ctx context.Context, spreadsheet *sheet.Spreadsheet) (*sheet.Worksheet, error) {
	if cmd.worksheet == "" {
		return spreadsheet.Worksheet(ctx, 0)
	}

	return spreadsheet.WorksheetByTitle(ctx, cmd.worksheet)
}
