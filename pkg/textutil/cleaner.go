package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentences shorter than this are merged into the running paragraph.
const shortSentenceRunes = 15

var (
	cjkKeep  = regexp.MustCompile(`[^\p{Han}\s.,，。！？：；「」『』（）()、；：“”‘’【】《》]`)
	spaceRun = regexp.MustCompile(`\s+`)
)

// CleanText keeps CJK ideographs, common CJK punctuation and whitespace,
// collapses whitespace runs to a single space and trims the result. Used for
// horizontal Traditional Chinese output.
func CleanText(text string) string {
	text = cjkKeep.ReplaceAllString(text, "")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanVertical keeps the same character set as CleanText but preserves line
// breaks, since vertical OCR output carries one column per line.
func CleanVertical(text string) string {
	text = cjkKeep.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

// CleanPlain normalizes whitespace without touching the character set. Used
// for English output.
func CleanPlain(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

// OrganizeLines splits text into trimmed, non-empty lines.
func OrganizeLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// OrganizeParagraphs splits text on Chinese sentence terminators (。！？),
// keeping the terminator with its sentence, and merges short sentences into
// the preceding run so the output reads as paragraphs.
func OrganizeParagraphs(text string) []string {
	var paragraphs []string
	var current strings.Builder

	for _, sentence := range splitSentences(text) {
		sentence = CleanText(sentence)
		if sentence == "" {
			continue
		}
		if utf8.RuneCountInString(sentence) < shortSentenceRunes {
			current.WriteString(sentence)
			continue
		}
		if current.Len() > 0 {
			paragraphs = append(paragraphs, current.String())
			current.Reset()
		}
		paragraphs = append(paragraphs, sentence)
	}

	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	return paragraphs
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		switch r {
		case '。', '！', '？':
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		sentences = append(sentences, current.String())
	}

	return sentences
}
