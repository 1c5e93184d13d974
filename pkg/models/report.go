package models

type PageDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextBlock is a piece of text recovered from the embedded text layer of a
// page.
type TextBlock struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// OCRContent holds recognized text for a page that had no usable text layer.
// Content is organized into paragraphs.
type OCRContent struct {
	Type       string   `json:"type"`
	Content    []string `json:"content"`
	Confidence float64  `json:"confidence"`
}

type PageResult struct {
	Page       int            `json:"page"`
	Dimensions PageDimensions `json:"dimensions"`
	TextBlocks []TextBlock    `json:"text_blocks"`
	OCRContent []OCRContent   `json:"ocr_content"`
}

type EngineInfo struct {
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
	PSM       int      `json:"psm"`
	OEM       int      `json:"oem"`
}

type Metadata struct {
	Source    string     `json:"source"`
	FileSize  int64      `json:"file_size"`
	FileHash  string     `json:"file_hash"`
	PageCount int        `json:"page_count"`
	Engine    EngineInfo `json:"engine"`
}

// Report is the JSON artifact produced for a single PDF. Pages appear in
// document order, numbered 1..N.
type Report struct {
	Metadata Metadata     `json:"metadata"`
	Pages    []PageResult `json:"pages"`
}
