package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrishsieh/pdfproparser/pkg/logger"
)

type PDFFile struct {
	AbsolutePath string
	RelativePath string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{logger: log}
}

// FindPDFs walks dir and returns every PDF file found, in walk order.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]PDFFile, error) {
	var pdfs []PDFFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if strings.ToLower(filepath.Ext(path)) != ".pdf" {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}

		pdfs = append(pdfs, PDFFile{
			AbsolutePath: absPath,
			RelativePath: relPath,
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return pdfs, nil
}
