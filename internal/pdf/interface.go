package pdf

import "github.com/chrishsieh/pdfproparser/pkg/models"

// Source is the page-oriented view of an open PDF consumed by the parser.
type Source interface {
	Path() string
	PageCount() int
	PageText(pageNum int) (string, error)
	PageImage(pageNum int) ([]byte, error)
	PageDims(pageNum int) models.PageDimensions
}
