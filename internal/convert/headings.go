package convert

import (
	"strings"
	"unicode/utf8"
)

// headingTerminators are trailing characters that mark a line as prose.
const headingTerminators = ".,:;?!"

// HeadingCandidate is a line judged likely to be a section title.
type HeadingCandidate struct {
	Title    string `json:"title"`
	Position int    `json:"position"`       // byte offset of the line start
	Page     int    `json:"page,omitempty"` // 1-based, PDF input only
}

// DetectHeadings scans text line by line and returns heading candidates in
// document order. A line qualifies when its trimmed form is non-empty and
// shorter than HeadingMaxLength runes, does not end in sentence punctuation,
// and has fewer than HeadingMaxWords words.
func (c *Converter) DetectHeadings(text string) []HeadingCandidate {
	return scanLines(text, func(line string, _ int) bool { return c.isHeadingLine(line) })
}

// DetectHeadings uses the default thresholds.
func DetectHeadings(text string) []HeadingCandidate {
	return defaultConverter.DetectHeadings(text)
}

func (c *Converter) isHeadingLine(trimmed string) bool {
	n := utf8.RuneCountInString(trimmed)
	if n == 0 || n >= c.h.HeadingMaxLength {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if strings.ContainsRune(headingTerminators, last) {
		return false
	}
	return len(strings.Fields(trimmed)) < c.h.HeadingMaxWords
}

// scanLines walks text split on \n, tracking the running byte offset as
// sum(len(line)+1), and records every trimmed line accepted by match. match
// also receives the offset of the line start.
func scanLines(text string, match func(trimmed string, offset int) bool) []HeadingCandidate {
	var out []HeadingCandidate
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if match(trimmed, offset) {
			out = append(out, HeadingCandidate{Title: trimmed, Position: offset})
		}
		offset += len(line) + 1
	}
	return out
}

// bodyStart returns the offset just past the line beginning at pos.
func bodyStart(text string, pos int) int {
	if pos >= len(text) {
		return len(text)
	}
	idx := strings.IndexByte(text[pos:], '\n')
	if idx < 0 {
		return len(text)
	}
	return pos + idx + 1
}

// sectionSpans slices text into one raw body per heading. Each body runs from
// the end of its heading line to the next heading (or end of text).
func sectionSpans(text string, headings []HeadingCandidate) []string {
	spans := make([]string, len(headings))
	for i, h := range headings {
		start := bodyStart(text, h.Position)
		end := len(text)
		if i+1 < len(headings) {
			end = headings[i+1].Position
		}
		if start > end {
			start = end
		}
		spans[i] = text[start:end]
	}
	return spans
}
