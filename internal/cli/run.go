// Package cli holds the shared run loop behind the per-variant binaries.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrishsieh/pdfproparser/internal/config"
	"github.com/chrishsieh/pdfproparser/internal/ocr"
	"github.com/chrishsieh/pdfproparser/internal/parser"
	"github.com/chrishsieh/pdfproparser/internal/pdf"
	"github.com/chrishsieh/pdfproparser/internal/report"
	"github.com/chrishsieh/pdfproparser/internal/scanner"
	"github.com/chrishsieh/pdfproparser/pkg/logger"
)

type Options struct {
	// Tool is the binary name used as the log prefix.
	Tool string
	// Variant fixes the OCR configuration for this run.
	Variant parser.Variant
	// Input is the PDF path in single-file mode.
	Input string
	// Output is the JSON path in single-file mode, or the output directory
	// in batch mode.
	Output string
	// Dir enables batch mode over a directory tree of PDFs.
	Dir        string
	ConfigPath string
	Verbose    bool
	Debug      bool
	// Engine overrides the default Tesseract engine.
	Engine ocr.Engine
}

// Run executes a full parse for one file or a directory of files and exits
// non-zero on failure. Batch mode logs per-file errors and moves on; only a
// run where every file failed is fatal.
func Run(opts Options) {
	logOpts := []logger.Option{
		logger.WithPrefix("[" + opts.Tool + "] "),
		logger.WithVerbose(opts.Verbose),
	}
	if opts.Debug {
		logOpts = append(logOpts, logger.WithLevel(logger.LevelTrace))
	}
	log := logger.New(logOpts...)

	if err := run(opts, log); err != nil {
		log.Fatal("%v", err)
	}
}

func run(opts Options, log *logger.Logger) error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	engine := opts.Engine
	if engine == nil {
		engine = ocr.NewTesseractEngine()
	}
	writer := report.NewWriter(log)
	ctx := context.Background()

	if opts.Dir == "" {
		return processFile(ctx, opts.Input, opts.Output, opts.Variant, engine, cfg, writer, log)
	}

	dirScanner := scanner.New(log)
	log.Info("Scanning directory: %s", opts.Dir)
	pdfs, err := dirScanner.FindPDFs(ctx, opts.Dir)
	if err != nil {
		return fmt.Errorf("finding PDFs: %w", err)
	}
	log.Info("Found %d PDFs to process", len(pdfs))

	if err := os.MkdirAll(opts.Output, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", opts.Output, err)
	}

	failures := 0
	for _, file := range pdfs {
		outPath := filepath.Join(opts.Output, jsonName(file.RelativePath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			log.Info("Error creating directory for %s: %v", outPath, err)
			failures++
			continue
		}
		if err := processFile(ctx, file.AbsolutePath, outPath, opts.Variant, engine, cfg, writer, log); err != nil {
			log.Info("Error processing %s: %v", file.RelativePath, err)
			failures++
		}
	}

	log.Info("Processing complete: %d succeeded, %d failed", len(pdfs)-failures, failures)
	if failures == len(pdfs) {
		return fmt.Errorf("all %d PDFs failed", failures)
	}
	return nil
}

func processFile(ctx context.Context, input, output string, variant parser.Variant, engine ocr.Engine, cfg *config.Config, writer *report.Writer, log *logger.Logger) error {
	doc, err := pdf.Open(input, cfg.DPI)
	if err != nil {
		return err
	}
	defer doc.Close()

	rep, err := parser.New(engine, variant, cfg, log).Parse(ctx, doc)
	if err != nil {
		return err
	}

	return writer.Write(rep, output)
}

func jsonName(relPath string) string {
	ext := filepath.Ext(relPath)
	return strings.TrimSuffix(relPath, ext) + ".json"
}
