package convert

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"scriptdesk/internal/script"
)

// DetectionMethod selects how section boundaries are found.
type DetectionMethod string

const (
	MethodHeadings   DetectionMethod = "headings"
	MethodParagraphs DetectionMethod = "paragraphs"
)

// DefaultDocumentTitle is used when the caller supplies no fallback title.
const DefaultDocumentTitle = "Untitled Script"

var paragraphBreakPattern = regexp.MustCompile(`\n\s*\n`)

// ParseDetectionMethod validates a user-supplied method name.
func ParseDetectionMethod(value string) (DetectionMethod, error) {
	switch DetectionMethod(strings.ToLower(strings.TrimSpace(value))) {
	case MethodHeadings, "":
		return MethodHeadings, nil
	case MethodParagraphs:
		return MethodParagraphs, nil
	default:
		return "", fmt.Errorf("unknown detection method %q (want headings or paragraphs)", value)
	}
}

// Options control BuildSections.
type Options struct {
	// SplitBySections false yields one section holding the whole text.
	SplitBySections bool
	DetectionMethod DetectionMethod
	// CleanFormatting passes each section body through Clean. Without it
	// bodies are only trimmed.
	CleanFormatting bool
	// DocumentTitle titles fallback sections and backs the result title.
	DocumentTitle string
}

// DefaultOptions splits by headings and cleans formatting.
func DefaultOptions() Options {
	return Options{
		SplitBySections: true,
		DetectionMethod: MethodHeadings,
		CleanFormatting: true,
		DocumentTitle:   DefaultDocumentTitle,
	}
}

func (o Options) documentTitle() string {
	if title := strings.TrimSpace(o.DocumentTitle); title != "" {
		return title
	}
	return DefaultDocumentTitle
}

// BuildSections splits text into ordered sections. It never returns an empty
// slice: when no structure is found the whole text becomes one section titled
// with the document title.
func (c *Converter) BuildSections(text string, opts Options) []script.Section {
	prepare := preparer(opts.CleanFormatting)
	title := opts.documentTitle()

	if !opts.SplitBySections {
		return []script.Section{c.section(title, text, prepare)}
	}
	switch opts.DetectionMethod {
	case MethodParagraphs:
		return c.paragraphSections(text, title, prepare)
	default:
		return c.headingSections(text, title, prepare)
	}
}

// BuildSections uses the default thresholds.
func BuildSections(text string, opts Options) []script.Section {
	return defaultConverter.BuildSections(text, opts)
}

// Convert builds sections and picks the document title from the extracted
// metadata, falling back to opts.DocumentTitle.
func (c *Converter) Convert(text string, opts Options) script.ConversionResult {
	meta := c.ExtractMetadata(text)
	title := meta.Title
	if title == "" {
		title = opts.documentTitle()
	}
	return script.ConversionResult{
		Title:    title,
		Author:   meta.Author,
		Sections: c.BuildSections(text, opts),
	}
}

// Convert uses the default thresholds.
func Convert(text string, opts Options) script.ConversionResult {
	return defaultConverter.Convert(text, opts)
}

func (c *Converter) section(title, raw string, prepare func(string) string) script.Section {
	content := prepare(raw)
	return script.Section{
		Title:    title,
		Content:  content,
		Duration: c.EstimateDuration(content),
	}
}

func (c *Converter) headingSections(text, title string, prepare func(string) string) []script.Section {
	headings := c.DetectHeadings(text)
	if len(headings) == 0 {
		return []script.Section{c.section(title, text, prepare)}
	}
	return c.sectionsFromHeadings(text, headings, prepare)
}

// sectionsFromHeadings emits exactly one section per heading, including
// headings whose body is empty.
func (c *Converter) sectionsFromHeadings(text string, headings []HeadingCandidate, prepare func(string) string) []script.Section {
	spans := sectionSpans(text, headings)
	sections := make([]script.Section, 0, len(headings))
	for i, h := range headings {
		sections = append(sections, c.section(h.Title, spans[i], prepare))
	}
	return sections
}

// paragraphSections only extracts a title; the remaining paragraphs always
// end up in a single section.
func (c *Converter) paragraphSections(text, title string, prepare func(string) string) []script.Section {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) > 1 && utf8.RuneCountInString(paragraphs[0]) < c.h.ParagraphTitleMaxLength {
		title = paragraphs[0]
		paragraphs = paragraphs[1:]
	}
	return []script.Section{c.section(title, strings.Join(paragraphs, "\n\n"), prepare)}
}

func splitParagraphs(text string) []string {
	text = lineEndingReplacer.Replace(text)
	raw := paragraphBreakPattern.Split(text, -1)
	paragraphs := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
