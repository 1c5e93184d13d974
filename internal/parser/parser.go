// Package parser drives the per-page extraction flow: embedded text layer
// first, OCR fallback for pages without one.
package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/chrishsieh/pdfproparser/internal/config"
	"github.com/chrishsieh/pdfproparser/internal/ocr"
	"github.com/chrishsieh/pdfproparser/internal/pdf"
	"github.com/chrishsieh/pdfproparser/pkg/logger"
	"github.com/chrishsieh/pdfproparser/pkg/models"
	"github.com/chrishsieh/pdfproparser/pkg/utils"
)

// Tesseract word confidences are not surfaced through the plain text call;
// OCR content carries this fixed estimate instead.
const defaultOCRConfidence = 95.0

type Parser struct {
	engine  ocr.Engine
	variant Variant
	cfg     *config.Config
	log     *logger.Logger
}

func New(engine ocr.Engine, variant Variant, cfg *config.Config, log *logger.Logger) *Parser {
	return &Parser{
		engine:  engine,
		variant: variant,
		cfg:     cfg,
		log:     log,
	}
}

type ocrTask struct {
	pageIndex int
	image     []byte
}

// Parse walks every page of src in document order and assembles the report.
// Pages whose cleaned text layer is shorter than the configured threshold
// are rasterized and recognized with the variant's OCR configuration. Any
// page failure aborts the run.
func (p *Parser) Parse(ctx context.Context, src pdf.Source) (*models.Report, error) {
	pageCount := src.PageCount()
	p.log.Info("Parsing %s (%d pages)", src.Path(), pageCount)

	pages := make([]models.PageResult, pageCount)
	var tasks []ocrTask

	for i := 0; i < pageCount; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := src.PageText(i)
		if err != nil {
			return nil, err
		}

		blocks := []models.TextBlock{}
		cleaned := p.variant.Clean(text)
		if utf8.RuneCountInString(cleaned) >= p.cfg.MinTextChars {
			for _, para := range p.variant.Organize(cleaned) {
				blocks = append(blocks, models.TextBlock{Type: "text", Content: para})
			}
		}

		pages[i] = models.PageResult{
			Page:       i + 1,
			Dimensions: src.PageDims(i),
			TextBlocks: blocks,
			OCRContent: []models.OCRContent{},
		}

		if len(blocks) > 0 {
			p.log.Debug("Page %d: %d text blocks from embedded text layer", i+1, len(blocks))
			continue
		}

		p.log.Debug("Page %d: no usable text layer, queueing for OCR", i+1)
		img, err := src.PageImage(i)
		if err != nil {
			return nil, err
		}
		if p.cfg.KeepPageImages {
			if err := savePageImage(src.Path(), i, img); err != nil {
				p.log.Debug("Could not keep page image for page %d: %v", i+1, err)
			}
		}
		tasks = append(tasks, ocrTask{pageIndex: i, image: img})
	}

	if len(tasks) > 0 {
		if err := p.runOCR(ctx, tasks, pages); err != nil {
			return nil, err
		}
	}

	meta, err := p.metadata(src, pageCount)
	if err != nil {
		return nil, err
	}

	return &models.Report{Metadata: meta, Pages: pages}, nil
}

// runOCR recognizes the queued pages on a bounded worker pool. Results land
// in indexed slots so page ordering never depends on completion order.
func (p *Parser) runOCR(ctx context.Context, tasks []ocrTask, pages []models.PageResult) error {
	p.log.Info("Running OCR on %d pages (workers=%d)", len(tasks), p.cfg.Workers)

	texts := make([]string, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for ti, task := range tasks {
		g.Go(func() error {
			res, err := p.engine.Recognize(ctx, ocr.Input{
				ID:             fmt.Sprintf("page-%d", task.pageIndex+1),
				Image:          task.image,
				Languages:      p.variant.Languages,
				PSM:            p.variant.PSM,
				OEM:            p.variant.OEM,
				DPI:            p.cfg.DPI,
				Variables:      p.variant.Variables,
				TessdataPrefix: p.cfg.TessdataPrefix,
			})
			if err != nil {
				return fmt.Errorf("page %d: %w", task.pageIndex+1, err)
			}
			texts[ti] = res.PlainText
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for ti, task := range tasks {
		cleaned := p.variant.Clean(texts[ti])
		paragraphs := p.variant.Organize(cleaned)
		if len(paragraphs) == 0 {
			p.log.Debug("Page %d: OCR produced no text", task.pageIndex+1)
			continue
		}
		pages[task.pageIndex].OCRContent = []models.OCRContent{{
			Type:       "ocr_text",
			Content:    paragraphs,
			Confidence: defaultOCRConfidence,
		}}
	}

	return nil
}

// savePageImage dumps a rendered page under the system temp dir for
// debugging OCR input quality.
func savePageImage(srcPath string, pageIndex int, img []byte) error {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	dir := filepath.Join(os.TempDir(), "pdfproparser-pages", base)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fmt.Sprintf("page-%d.png", pageIndex+1)), img, 0644)
}

func (p *Parser) metadata(src pdf.Source, pageCount int) (models.Metadata, error) {
	info, err := os.Stat(src.Path())
	if err != nil {
		return models.Metadata{}, fmt.Errorf("stat %s: %w", src.Path(), err)
	}

	hash, err := utils.FileHash(src.Path())
	if err != nil {
		return models.Metadata{}, fmt.Errorf("hash %s: %w", src.Path(), err)
	}

	return models.Metadata{
		Source:    src.Path(),
		FileSize:  info.Size(),
		FileHash:  hash,
		PageCount: pageCount,
		Engine: models.EngineInfo{
			Name:      p.engine.Name(),
			Languages: p.variant.Languages,
			PSM:       p.variant.PSM,
			OEM:       p.variant.OEM,
		},
	}, nil
}
