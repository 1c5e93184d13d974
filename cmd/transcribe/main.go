// transcribe dumps the embedded text layer of a PDF without OCR, one page
// after another, to stdout and an output file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chrishsieh/pdfproparser/internal/cli"
	"github.com/chrishsieh/pdfproparser/internal/pdf"
)

func main() {
	output := flag.String("o", "transcript.txt", "path to the output text file")
	flag.Parse()

	input, err := cli.ParseInput(flag.CommandLine, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: transcribe <input.pdf> -o <transcript.txt>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: transcribe <input.pdf> -o <transcript.txt>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	doc, err := pdf.Open(input, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transcribe: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	var pages []string
	for i := 0; i < doc.PageCount(); i++ {
		text, err := doc.PageText(i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "transcribe: %v\n", err)
			os.Exit(1)
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	transcript := strings.Join(pages, "\n")
	fmt.Println(transcript)

	if err := os.WriteFile(*output, []byte(transcript), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "transcribe: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Transcript saved to %s\n", *output)
}
