package convert

import (
	"strings"
	"testing"
)

func glyph(text, font string, size float64) Glyph {
	return Glyph{Text: text, Font: font, Transform: []float64{size, 0, 0, size, 0, 0}}
}

func TestConvertPagesSeparate(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "  first page words  "},
		{Number: 2, Text: ""},
	}
	res := ConvertPages(pages, PDFOptions{CleanWhitespace: true, DocumentTitle: "Deck"})
	if len(res.Sections) != 2 {
		t.Fatalf("expected one section per page, got %+v", res.Sections)
	}
	if res.Sections[0].Title != "Page 1" || res.Sections[0].Content != "  first page words  " {
		t.Fatalf("page sections must be verbatim, got %+v", res.Sections[0])
	}
	if res.Sections[0].Duration != 1 {
		t.Fatalf("duration = %d, want 1", res.Sections[0].Duration)
	}
	if res.Sections[1].Title != "Page 2" || res.Sections[1].Duration != 0 {
		t.Fatalf("unexpected empty page section: %+v", res.Sections[1])
	}
}

func TestConvertPagesNumbersFromPosition(t *testing.T) {
	res := ConvertPages([]Page{{Text: "a."}, {Text: "b."}}, PDFOptions{})
	if res.Sections[0].Title != "Page 1" || res.Sections[1].Title != "Page 2" {
		t.Fatalf("unexpected titles: %+v", res.Sections)
	}
}

func TestConvertPagesMainContentFallback(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "This page is only prose.\nIt keeps going here."},
		{Number: 2, Text: "Still prose on page two."},
	}
	res := ConvertPages(pages, PDFOptions{CombinePages: true, CleanWhitespace: true, DocumentTitle: "Deck"})
	if len(res.Sections) != 1 {
		t.Fatalf("expected single section, got %+v", res.Sections)
	}
	s := res.Sections[0]
	if s.Title != MainContentTitle {
		t.Fatalf("title = %q, want %q", s.Title, MainContentTitle)
	}
	want := "This page is only prose.\nIt keeps going here.\n\nStill prose on page two."
	if s.Content != want {
		t.Fatalf("content = %q, want %q", s.Content, want)
	}
	if res.Title != "This page is only prose." {
		t.Fatalf("document title = %q", res.Title)
	}
}

func TestConvertPagesNoPages(t *testing.T) {
	for _, combine := range []bool{true, false} {
		res := ConvertPages(nil, PDFOptions{CombinePages: combine})
		if len(res.Sections) != 1 || res.Sections[0].Title != MainContentTitle || res.Sections[0].Content != "" {
			t.Fatalf("combine=%v: unexpected sections %+v", combine, res.Sections)
		}
		if res.Title != DefaultDocumentTitle {
			t.Fatalf("combine=%v: title = %q", combine, res.Title)
		}
	}
}

func TestConvertPagesChapterTrigger(t *testing.T) {
	pages := []Page{{Number: 1, Text: "Opening remarks go here.\nChapter 1: Where it all began, long ago and far away in a distant land.\nThe story starts.\nChapter 2 ends here.\nMore story."}}
	res := ConvertPages(pages, PDFOptions{CombinePages: true, CleanWhitespace: true})
	if len(res.Sections) != 2 {
		t.Fatalf("expected two chapter sections, got %+v", res.Sections)
	}
	if !strings.HasPrefix(res.Sections[0].Title, "Chapter 1") || res.Sections[0].Content != "The story starts." {
		t.Fatalf("unexpected first section: %+v", res.Sections[0])
	}
	if res.Sections[1].Title != "Chapter 2 ends here." || res.Sections[1].Content != "More story." {
		t.Fatalf("unexpected second section: %+v", res.Sections[1])
	}
}

func TestConvertPagesPageMarkers(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "Prose on the first page.\n"},
		{Number: 2, Text: "Prose on the second page."},
	}
	opts := PDFOptions{CombinePages: true, CleanWhitespace: true, PageMarkers: true}
	res := ConvertPages(pages, opts)
	if len(res.Sections) != 2 {
		t.Fatalf("expected a section per marker, got %+v", res.Sections)
	}
	if res.Sections[0].Title != "## Page 1" || res.Sections[0].Content != "Prose on the first page." {
		t.Fatalf("unexpected first section: %+v", res.Sections[0])
	}
	if res.Sections[1].Title != "## Page 2" || res.Sections[1].Content != "Prose on the second page." {
		t.Fatalf("unexpected second section: %+v", res.Sections[1])
	}
	if res.Title != "Prose on the first page." {
		t.Fatalf("title must ignore markers, got %q", res.Title)
	}

	headings := DetectPDFHeadings(pages, opts)
	if len(headings) != 2 || headings[0].Page != 1 || headings[1].Page != 2 {
		t.Fatalf("unexpected heading pages: %+v", headings)
	}
}

func TestConvertPagesWithoutCleanup(t *testing.T) {
	pages := []Page{{Number: 1, Text: "Intro\n  body   text,  \n  more.  "}}
	res := ConvertPages(pages, PDFOptions{CombinePages: true})
	if got := res.Sections[0].Content; got != "body   text,  \n  more." {
		t.Fatalf("content = %q", got)
	}
}

func TestAnalyzeFonts(t *testing.T) {
	pages := []Page{{
		Number: 1,
		Glyphs: []Glyph{
			glyph("Big Heading Here, truly", "F2", 24),
			glyph("body text", "F1", 10),
			glyph("more body", "F1", 10),
			glyph("more body", "F1", 10),
			glyph("   ", "F3", 100),
			{Text: "no transform", Font: "F4"},
		},
	}}
	stats := AnalyzeFonts(pages)
	if stats.AverageScale != 13.5 {
		t.Fatalf("average scale = %v, want 13.5", stats.AverageScale)
	}
	if len(stats.HeadingFonts) != 1 || stats.HeadingFonts[0] != "F2" {
		t.Fatalf("heading fonts = %v, want [F2]", stats.HeadingFonts)
	}
	if !stats.IsHeadingFont("F2") || stats.IsHeadingFont("F1") {
		t.Fatalf("IsHeadingFont mismatch: %+v", stats)
	}
	if stats.FontScales["F1"] != 10 {
		t.Fatalf("F1 scale = %v", stats.FontScales["F1"])
	}
}

func TestAnalyzeFontsEmpty(t *testing.T) {
	stats := AnalyzeFonts([]Page{{Number: 1, Text: "x"}})
	if stats.AverageScale != 0 || len(stats.HeadingFonts) != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestConvertPagesFontTrigger(t *testing.T) {
	pages := []Page{{
		Number: 1,
		Text:   "Preface text.\nThe Big Heading:\nBody under the heading.",
		Glyphs: []Glyph{
			glyph("Preface text.", "F1", 10),
			glyph("The Big Heading:", "F2", 24),
			glyph("Body under the heading.", "F1", 10),
		},
	}}

	off := ConvertPages(pages, PDFOptions{CombinePages: true, CleanWhitespace: true})
	if len(off.Sections) != 1 || off.Sections[0].Title != MainContentTitle {
		t.Fatalf("font trigger should be off by default, got %+v", off.Sections)
	}

	on := ConvertPages(pages, PDFOptions{CombinePages: true, CleanWhitespace: true, FontAnalysis: true})
	if len(on.Sections) != 1 || on.Sections[0].Title != "The Big Heading:" {
		t.Fatalf("expected font heading section, got %+v", on.Sections)
	}
	if on.Sections[0].Content != "Body under the heading." {
		t.Fatalf("content = %q", on.Sections[0].Content)
	}
}

func TestFontHeadingsStayOnTheirPage(t *testing.T) {
	pages := []Page{
		{
			Number: 1,
			Text:   "Opening remarks, briefly.\nKey findings:\nGrowth was strong.",
			Glyphs: []Glyph{
				glyph("Opening remarks, briefly.", "F1", 10),
				glyph("Key findings:", "F2", 24),
				glyph("Growth was strong.", "F1", 10),
			},
		},
		{
			Number: 2,
			Text:   "Later we repeat ourselves.\nKey findings:\nStill growing.",
			Glyphs: []Glyph{
				glyph("Later we repeat ourselves.", "F1", 10),
				glyph("Key findings:", "F1", 10),
				glyph("Still growing.", "F1", 10),
			},
		},
	}

	headings := DetectPDFHeadings(pages, PDFOptions{CombinePages: true, FontAnalysis: true})
	if len(headings) != 1 {
		t.Fatalf("expected only the page 1 heading, got %+v", headings)
	}
	if headings[0].Title != "Key findings:" || headings[0].Page != 1 {
		t.Fatalf("unexpected heading: %+v", headings[0])
	}
}
