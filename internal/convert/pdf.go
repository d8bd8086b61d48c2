package convert

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"scriptdesk/internal/script"
)

// MainContentTitle titles the single section emitted when a combined PDF
// buffer has no heading candidates.
const MainContentTitle = "Main Content"

var (
	chapterPattern    = regexp.MustCompile(`^(Chapter|Section|Part|Unit|Module|Topic|Lesson)\s+\d+`)
	pageMarkerPattern = regexp.MustCompile(`## Page \d+`)
)

// Glyph is one positioned text run reported by a PDF decoder. Transform
// follows the PDF text matrix layout; components 0 and 3 approximate the
// horizontal and vertical scale.
type Glyph struct {
	Text      string
	Font      string
	Transform []float64
}

// Page is the decoded text of one PDF page.
type Page struct {
	Number int // 1-based; zero means "use the slice position"
	Text   string
	Glyphs []Glyph
}

// PDFOptions control ConvertPages.
type PDFOptions struct {
	// CombinePages merges pages into one buffer and splits it by headings.
	// When false every page becomes its own section, verbatim.
	CombinePages bool
	// CleanWhitespace applies CleanPDF to section bodies.
	CleanWhitespace bool
	// PageMarkers writes a "## Page N" line ahead of each page in the
	// combined buffer, which the heading scan treats as a page break.
	PageMarkers bool
	// FontAnalysis adds lines set in an oversized font as heading triggers.
	FontAnalysis  bool
	DocumentTitle string
}

// DefaultPDFOptions combines pages with markers and cleans whitespace.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		CombinePages:    true,
		CleanWhitespace: true,
		PageMarkers:     true,
		DocumentTitle:   DefaultDocumentTitle,
	}
}

// FontStats summarizes glyph scales across a document.
type FontStats struct {
	AverageScale float64            `json:"average_scale"`
	FontScales   map[string]float64 `json:"font_scales"`
	HeadingFonts []string           `json:"heading_fonts"`
}

// IsHeadingFont reports whether font was flagged as a heading font.
func (s FontStats) IsHeadingFont(font string) bool {
	i := sort.SearchStrings(s.HeadingFonts, font)
	return i < len(s.HeadingFonts) && s.HeadingFonts[i] == font
}

type combinedBuffer struct {
	text    string
	starts  []int // offset where each page (including its marker) begins
	numbers []int
}

func pageNumber(index int, p Page) int {
	if p.Number > 0 {
		return p.Number
	}
	return index + 1
}

func combinePages(pages []Page, markers bool) combinedBuffer {
	var b strings.Builder
	buf := combinedBuffer{
		starts:  make([]int, 0, len(pages)),
		numbers: make([]int, 0, len(pages)),
	}
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		n := pageNumber(i, p)
		buf.starts = append(buf.starts, b.Len())
		buf.numbers = append(buf.numbers, n)
		if markers {
			fmt.Fprintf(&b, "## Page %d\n", n)
		}
		b.WriteString(p.Text)
	}
	buf.text = b.String()
	return buf
}

// pageAt maps a buffer offset back to its page number.
func (b combinedBuffer) pageAt(offset int) int {
	if len(b.starts) == 0 {
		return 0
	}
	i := sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > offset })
	if i == 0 {
		return b.numbers[0]
	}
	return b.numbers[i-1]
}

// ConvertPages converts decoded PDF pages into a script. The title comes from
// metadata extraction over the page text, falling back to opts.DocumentTitle.
func (c *Converter) ConvertPages(pages []Page, opts PDFOptions) script.ConversionResult {
	fallback := Options{DocumentTitle: opts.DocumentTitle}.documentTitle()
	plain := combinePages(pages, false)
	meta := c.ExtractMetadata(plain.text)
	title := meta.Title
	if title == "" {
		title = fallback
	}
	return script.ConversionResult{
		Title:    title,
		Author:   meta.Author,
		Sections: c.pdfSections(pages, opts),
	}
}

// ConvertPages uses the default thresholds.
func ConvertPages(pages []Page, opts PDFOptions) script.ConversionResult {
	return defaultConverter.ConvertPages(pages, opts)
}

func (c *Converter) pdfSections(pages []Page, opts PDFOptions) []script.Section {
	prepare := trimOnly
	if opts.CleanWhitespace {
		prepare = CleanPDF
	}

	if !opts.CombinePages && len(pages) > 0 {
		sections := make([]script.Section, 0, len(pages))
		for i, p := range pages {
			sections = append(sections, script.Section{
				Title:    fmt.Sprintf("Page %d", pageNumber(i, p)),
				Content:  p.Text,
				Duration: c.EstimateDuration(p.Text),
			})
		}
		return sections
	}

	buf := combinePages(pages, opts.PageMarkers)
	var fonts FontStats
	if opts.FontAnalysis {
		fonts = c.AnalyzeFonts(pages)
	}
	headings := c.detectPDFHeadings(buf, pages, fonts)
	if len(headings) == 0 {
		return []script.Section{c.section(MainContentTitle, buf.text, prepare)}
	}
	return c.sectionsFromHeadings(buf.text, headings, prepare)
}

// DetectPDFHeadings runs the PDF heading scan over the combined page buffer
// and reports each candidate with its page number.
func (c *Converter) DetectPDFHeadings(pages []Page, opts PDFOptions) []HeadingCandidate {
	buf := combinePages(pages, opts.PageMarkers)
	var fonts FontStats
	if opts.FontAnalysis {
		fonts = c.AnalyzeFonts(pages)
	}
	return c.detectPDFHeadings(buf, pages, fonts)
}

func (c *Converter) detectPDFHeadings(buf combinedBuffer, pages []Page, fonts FontStats) []HeadingCandidate {
	fontLines := headingFontLines(pages, fonts)
	headings := scanLines(buf.text, func(line string, offset int) bool {
		if line == "" {
			return false
		}
		if c.isHeadingLine(line) || chapterPattern.MatchString(line) || pageMarkerPattern.MatchString(line) {
			return true
		}
		_, ok := fontLines[pageLine{page: buf.pageAt(offset), text: line}]
		return ok
	})
	for i := range headings {
		headings[i].Page = buf.pageAt(headings[i].Position)
	}
	return headings
}

type pageLine struct {
	page int
	text string
}

// headingFontLines collects the trimmed text of every glyph run set in a
// heading font, keyed by the page it appears on. It is empty when no heading
// fonts were flagged.
func headingFontLines(pages []Page, fonts FontStats) map[pageLine]struct{} {
	if len(fonts.HeadingFonts) == 0 {
		return nil
	}
	lines := make(map[pageLine]struct{})
	for i, p := range pages {
		n := pageNumber(i, p)
		for _, g := range p.Glyphs {
			text := strings.TrimSpace(g.Text)
			if text == "" || !fonts.IsHeadingFont(g.Font) {
				continue
			}
			lines[pageLine{page: n, text: text}] = struct{}{}
		}
	}
	return lines
}

// AnalyzeFonts averages glyph scale over the whole document and per font, and
// flags fonts whose average exceeds HeadingFontRatio times the document
// average. Glyphs without text or without a usable transform are ignored.
func (c *Converter) AnalyzeFonts(pages []Page) FontStats {
	type acc struct {
		sum   float64
		count int
	}
	perFont := make(map[string]*acc)
	var total acc
	for _, p := range pages {
		for _, g := range p.Glyphs {
			if strings.TrimSpace(g.Text) == "" {
				continue
			}
			scale := glyphScale(g.Transform)
			if scale <= 0 {
				continue
			}
			total.sum += scale
			total.count++
			a := perFont[g.Font]
			if a == nil {
				a = &acc{}
				perFont[g.Font] = a
			}
			a.sum += scale
			a.count++
		}
	}

	stats := FontStats{FontScales: make(map[string]float64, len(perFont))}
	if total.count == 0 {
		return stats
	}
	stats.AverageScale = total.sum / float64(total.count)
	threshold := stats.AverageScale * c.h.HeadingFontRatio
	for font, a := range perFont {
		avg := a.sum / float64(a.count)
		stats.FontScales[font] = avg
		if avg > threshold {
			stats.HeadingFonts = append(stats.HeadingFonts, font)
		}
	}
	sort.Strings(stats.HeadingFonts)
	return stats
}

// DetectPDFHeadings uses the default thresholds.
func DetectPDFHeadings(pages []Page, opts PDFOptions) []HeadingCandidate {
	return defaultConverter.DetectPDFHeadings(pages, opts)
}

// AnalyzeFonts uses the default thresholds.
func AnalyzeFonts(pages []Page) FontStats {
	return defaultConverter.AnalyzeFonts(pages)
}

func glyphScale(transform []float64) float64 {
	if len(transform) < 4 {
		return 0
	}
	return math.Max(math.Abs(transform[0]), math.Abs(transform[3]))
}
