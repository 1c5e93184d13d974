package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/chrishsieh/pdfproparser/pkg/models"
)

var (
	// ErrNotFound indicates the input path does not exist or is not readable.
	ErrNotFound = errors.New("input pdf not found")
	// ErrInvalidPDF indicates the file exists but cannot be parsed as a PDF.
	ErrInvalidPDF = errors.New("invalid pdf")
)

// Document wraps an open PDF and yields pages in document order: rendered
// bitmaps, embedded text and page dimensions. It is not safe for concurrent
// use; callers rasterize sequentially and parallelize downstream.
type Document struct {
	path string
	doc  *fitz.Document
	dims []models.PageDimensions
	dpi  int
}

// Open validates and opens the PDF at path. The dpi is used for all
// subsequent page rendering.
func Open(path string, dpi int) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, fmt.Errorf("%w: %s: only PDF files are supported", ErrInvalidPDF, path)
	}

	pageDims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}

	dims := make([]models.PageDimensions, len(pageDims))
	for i, dim := range pageDims {
		dims[i] = models.PageDimensions{Width: dim.Width, Height: dim.Height}
	}

	return &Document{path: path, doc: doc, dims: dims, dpi: dpi}, nil
}

func (d *Document) Path() string { return d.path }

func (d *Document) PageCount() int { return d.doc.NumPage() }

// PageText returns the embedded text layer of a page. Page numbers are zero
// indexed, matching the fitz package.
func (d *Document) PageText(pageNum int) (string, error) {
	text, err := d.doc.Text(pageNum)
	if err != nil {
		return "", fmt.Errorf("%w: text for page %d: %v", ErrInvalidPDF, pageNum+1, err)
	}
	return text, nil
}

// PageImage renders a page to PNG bytes at the configured DPI.
func (d *Document) PageImage(pageNum int) ([]byte, error) {
	img, err := d.doc.ImageDPI(pageNum, float64(d.dpi))
	if err != nil {
		return nil, fmt.Errorf("%w: render page %d: %v", ErrInvalidPDF, pageNum+1, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", pageNum+1, err)
	}
	return buf.Bytes(), nil
}

// PageDims returns the page size in points. The zero value is returned when
// pdfcpu reported fewer pages than fitz.
func (d *Document) PageDims(pageNum int) models.PageDimensions {
	if pageNum < 0 || pageNum >= len(d.dims) {
		return models.PageDimensions{}
	}
	return d.dims[pageNum]
}

func (d *Document) Close() error {
	return d.doc.Close()
}
