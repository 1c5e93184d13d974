// Package ocr defines the recognition engine contract and its Tesseract
// implementation.
package ocr

import (
	"context"
	"errors"
)

var (
	// ErrEngineUnavailable indicates the OCR engine or its trained data
	// cannot be used at all (missing binary, missing language files).
	ErrEngineUnavailable = errors.New("ocr engine unavailable")
	// ErrRecognition indicates the engine ran but failed to produce text.
	ErrRecognition = errors.New("ocr recognition failed")
)

// Input is a single encoded page image submitted for recognition.
type Input struct {
	// ID is echoed back in the Result so callers can correlate pages.
	ID string
	// Image is the PNG-encoded page bitmap.
	Image []byte
	// Languages lists Tesseract trained-data names, e.g. "chi_tra_vert".
	Languages []string
	// PSM is the Tesseract page segmentation mode.
	PSM int
	// OEM selects the recognition algorithm; negative means engine default.
	OEM int
	// DPI is the effective resolution of Image; zero means unknown.
	DPI int
	// Variables carries extra engine variables such as
	// preserve_interword_spaces.
	Variables map[string]string
	// TessdataPrefix overrides the trained-data directory when non-empty.
	TessdataPrefix string
}

// Result is the recognized text for one input.
type Result struct {
	InputID   string
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
