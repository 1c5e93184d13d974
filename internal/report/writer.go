// Package report serializes parse results to disk.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrishsieh/pdfproparser/pkg/logger"
	"github.com/chrishsieh/pdfproparser/pkg/models"
)

// ErrWrite indicates the output artifact could not be written.
var ErrWrite = errors.New("output write failed")

type Writer struct {
	logger *logger.Logger
}

func NewWriter(log *logger.Logger) *Writer {
	return &Writer{logger: log}
}

// Write serializes rep as indented UTF-8 JSON at outPath and a plain-text
// transcript next to it (same base name, .txt extension). Both files are
// replaced atomically; a failed run never leaves a partial artifact behind.
func (w *Writer) Write(rep *models.Report, outPath string) error {
	data, err := encode(rep)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := writeAtomic(outPath, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, outPath, err)
	}
	w.logger.Info("Report saved to %s", outPath)

	txtPath := transcriptPath(outPath)
	if err := writeAtomic(txtPath, []byte(Transcript(rep))); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, txtPath, err)
	}
	w.logger.Info("Transcript saved to %s", txtPath)

	return nil
}

// Transcript renders the per-page text of a report as plain text: one
// paragraph per line, pages separated by a blank line.
func Transcript(rep *models.Report) string {
	var sb strings.Builder
	for _, page := range rep.Pages {
		var lines []string
		for _, block := range page.TextBlocks {
			if block.Content != "" {
				lines = append(lines, block.Content)
			}
		}
		for _, ocrBlock := range page.OCRContent {
			lines = append(lines, ocrBlock.Content...)
		}
		if len(lines) == 0 {
			continue
		}
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// encode marshals without HTML escaping so CJK text stays readable in the
// output file.
func encode(rep *models.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic writes via a temp file in the destination directory followed
// by a rename, so readers never observe a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pdfproparser-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func transcriptPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + ".txt"
}
