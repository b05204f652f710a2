package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"gsheets/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.ExportCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	// .env is optional
	godotenv.Load()

	flag.Usage = usage
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	if options.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := find(args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command '%s'\n\n", args[0])
		usage()
		os.Exit(1)
	}

	if len(args) > 1 && args[1] == "help" {
		cmd.Help()
		os.Exit(0)
	}

	flagset := cmd.FlagSet()
	if err := flagset.Parse(args[1:]); err != nil {
		logrus.Fatalf("%v", err)
	}

	if err := cmd.Execute(&options); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func find(name string) commands.Command {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func usage() {
	fmt.Println()
	fmt.Println("  Usage: gsheets [--debug] <command> [options]")
	fmt.Println()
	fmt.Println("  Commands:")

	for _, cmd := range cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Println("  Use 'gsheets <command> help' for the command options")
	fmt.Println()
}
