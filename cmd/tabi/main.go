package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/DanielWang2002/KanseiTabi/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	dataDir := flag.String("data-dir", "", "override the data directory (default ~/.kanseitabi)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	// Hand the remaining args to the CLI runner; no args opens the TUI.
	code := cli.Run(flag.Args(), cli.Options{
		DataDir: *dataDir,
		NoColor: *noColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
