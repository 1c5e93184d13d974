package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrishsieh/pdfproparser/internal/cli"
	"github.com/chrishsieh/pdfproparser/internal/parser"
	"github.com/chrishsieh/pdfproparser/pkg/version"
)

func main() {
	output := flag.String("o", "output.json", "path to the output JSON file (output directory in -dir mode)")
	configPath := flag.String("config", "", "path to an optional config file")
	dir := flag.String("dir", "", "process every PDF under a directory instead of a single file")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo())
		return
	}

	input, err := cli.ParseInput(flag.CommandLine, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: parse-chinese-vertical <input.pdf> -o <output.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *dir == "" && input == "" {
		fmt.Fprintln(os.Stderr, "usage: parse-chinese-vertical <input.pdf> -o <output.json>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cli.Run(cli.Options{
		Tool:       "parse-chinese-vertical",
		Variant:    parser.ChineseVertical(),
		Input:      input,
		Output:     *output,
		Dir:        *dir,
		ConfigPath: *configPath,
		Verbose:    *verbose,
		Debug:      *debug,
	})
}
