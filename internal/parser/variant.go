package parser

import "github.com/chrishsieh/pdfproparser/pkg/textutil"

// CleanMode selects the text cleaning and organization rules for a variant.
type CleanMode int

const (
	CleanHorizontal CleanMode = iota
	CleanVertical
	CleanPlain
)

// Variant is the fixed per-tool OCR configuration: language model, page
// segmentation mode, engine mode and cleaning rules.
type Variant struct {
	Name      string
	Languages []string
	PSM       int
	OEM       int
	Variables map[string]string
	CleanMode CleanMode
}

// ChineseVertical recognizes vertically typeset Traditional Chinese.
func ChineseVertical() Variant {
	return Variant{
		Name:      "chinese-vertical",
		Languages: []string{"chi_tra_vert"},
		PSM:       5,
		OEM:       3,
		CleanMode: CleanVertical,
	}
}

// ChineseHorizontal recognizes horizontally typeset Traditional Chinese with
// English fallback.
func ChineseHorizontal() Variant {
	return Variant{
		Name:      "chinese-horizontal",
		Languages: []string{"chi_tra", "eng"},
		PSM:       6,
		OEM:       1,
		Variables: map[string]string{"preserve_interword_spaces": "1"},
		CleanMode: CleanHorizontal,
	}
}

// English recognizes horizontally typeset English.
func English() Variant {
	return Variant{
		Name:      "english",
		Languages: []string{"eng"},
		PSM:       3,
		OEM:       1,
		CleanMode: CleanPlain,
	}
}

// Clean applies the variant's cleaning rules to raw text.
func (v Variant) Clean(text string) string {
	switch v.CleanMode {
	case CleanVertical:
		return textutil.CleanVertical(text)
	case CleanPlain:
		return textutil.CleanPlain(text)
	default:
		return textutil.CleanText(text)
	}
}

// Organize turns cleaned text into the paragraph list stored in the report.
func (v Variant) Organize(text string) []string {
	switch v.CleanMode {
	case CleanHorizontal:
		return textutil.OrganizeParagraphs(text)
	default:
		return textutil.OrganizeLines(text)
	}
}
