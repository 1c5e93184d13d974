package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine on top of the gosseract client. A fresh
// client is created per recognition so language and variable state never
// leaks between pages. Installation health is probed once at construction:
// a missing tesseract library or empty tessdata directory marks the engine
// unavailable and every Recognize call reports that instead of failing page
// by page.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
	available     map[string]bool
	availErr      error
}

var _ Engine = (*TesseractEngine)(nil)

func NewTesseractEngine() *TesseractEngine {
	e := &TesseractEngine{clientFactory: gosseract.NewClient}

	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		e.availErr = fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
		return e
	}
	if len(langs) == 0 {
		e.availErr = fmt.Errorf("%w: no trained language data installed", ErrEngineUnavailable)
		return e
	}

	e.available = make(map[string]bool, len(langs))
	for _, lang := range langs {
		e.available[lang] = true
	}
	return e
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// checkLanguages rejects languages absent from the probed installation. A
// custom tessdata prefix may carry languages the probe did not see, so the
// check only applies to the default location.
func (e *TesseractEngine) checkLanguages(in Input) error {
	if in.TessdataPrefix != "" || e.available == nil {
		return nil
	}
	for _, lang := range in.Languages {
		if !e.available[lang] {
			return fmt.Errorf("%w: language data %q is not installed", ErrEngineUnavailable, lang)
		}
	}
	return nil
}

func (e *TesseractEngine) Recognize(ctx context.Context, in Input) (Result, error) {
	if e.availErr != nil {
		return Result{}, e.availErr
	}

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	if err := e.checkLanguages(in); err != nil {
		return Result{}, err
	}

	c := e.clientFactory()
	defer c.Close()

	if in.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(in.TessdataPrefix); err != nil {
			return Result{}, fmt.Errorf("%w: set tessdata prefix: %v", ErrEngineUnavailable, err)
		}
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return Result{}, fmt.Errorf("%w: set languages %v: %v", ErrEngineUnavailable, in.Languages, err)
		}
	}
	if err := c.SetImageFromBytes(in.Image); err != nil {
		return Result{}, fmt.Errorf("%w: set image: %v", ErrRecognition, err)
	}
	if err := c.SetPageSegMode(gosseract.PageSegMode(in.PSM)); err != nil {
		return Result{}, fmt.Errorf("%w: set page segmentation mode %d: %v", ErrRecognition, in.PSM, err)
	}
	if in.OEM >= 0 {
		if err := c.SetVariable("tessedit_ocr_engine_mode", fmt.Sprint(in.OEM)); err != nil {
			return Result{}, fmt.Errorf("%w: set engine mode %d: %v", ErrRecognition, in.OEM, err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable("user_defined_dpi", fmt.Sprint(in.DPI)); err != nil {
			return Result{}, fmt.Errorf("%w: set dpi: %v", ErrRecognition, err)
		}
	}
	for k, v := range in.Variables {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return Result{}, fmt.Errorf("%w: set variable %s: %v", ErrRecognition, k, err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRecognition, err)
	}

	return Result{InputID: in.ID, PlainText: strings.TrimSpace(text)}, nil
}
