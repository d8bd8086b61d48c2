package pdfdoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAssemblePageOrdersLinesTopToBottom(t *testing.T) {
	runs := []Run{
		{Font: "Body", Size: 10, X: 72, Y: 688, W: 30, S: "second"},
		{Font: "Body", Size: 10, X: 72, Y: 700, W: 20, S: "first"},
		{Font: "Body", Size: 10, X: 96, Y: 700.5, W: 20, S: "line"},
	}
	page := AssemblePage(3, runs)
	if page.Number != 3 {
		t.Fatalf("expected page number 3, got %d", page.Number)
	}
	if page.Text != "first line\nsecond" {
		t.Fatalf("unexpected text %q", page.Text)
	}
}

func TestAssemblePageJoinsAdjacentGlyphsWithoutSpace(t *testing.T) {
	runs := []Run{
		{Font: "Body", Size: 10, X: 10, Y: 100, W: 5, S: "H"},
		{Font: "Body", Size: 10, X: 15, Y: 100, W: 5, S: "i"},
		{Font: "Body", Size: 10, X: 24, Y: 100, W: 5, S: "!"},
	}
	page := AssemblePage(1, runs)
	if page.Text != "Hi !" {
		t.Fatalf("unexpected text %q", page.Text)
	}
}

func TestAssemblePageInsertsParagraphBreak(t *testing.T) {
	runs := []Run{
		{Font: "Body", Size: 10, X: 72, Y: 700, W: 40, S: "Para one."},
		{Font: "Body", Size: 10, X: 72, Y: 688, W: 40, S: "Still one."},
		{Font: "Body", Size: 10, X: 72, Y: 650, W: 40, S: "Para two."},
	}
	page := AssemblePage(1, runs)
	want := "Para one.\nStill one.\n\nPara two."
	if page.Text != want {
		t.Fatalf("unexpected text %q want %q", page.Text, want)
	}
}

func TestAssemblePageSplitsGlyphsByFont(t *testing.T) {
	runs := []Run{
		{Font: "Heading", Size: 18, X: 72, Y: 720, W: 80, S: "Overview"},
		{Font: "Body", Size: 10, X: 72, Y: 690, W: 30, S: "Plain"},
		{Font: "Bold", Size: 10, X: 110, Y: 690, W: 30, S: "strong"},
	}
	page := AssemblePage(1, runs)
	if len(page.Glyphs) != 3 {
		t.Fatalf("expected 3 glyph runs, got %#v", page.Glyphs)
	}
	heading := page.Glyphs[0]
	if heading.Text != "Overview" || heading.Font != "Heading" {
		t.Fatalf("unexpected heading glyph %#v", heading)
	}
	if len(heading.Transform) != 6 || heading.Transform[0] != 18 || heading.Transform[3] != 18 {
		t.Fatalf("unexpected transform %v", heading.Transform)
	}
	if page.Glyphs[2].Text != "strong" || page.Glyphs[2].Font != "Bold" {
		t.Fatalf("unexpected trailing glyph %#v", page.Glyphs[2])
	}
}

func TestAssemblePageSkipsEmptyRuns(t *testing.T) {
	page := AssemblePage(1, []Run{{Font: "Body", Size: 10, Y: 10}})
	if page.Text != "" || len(page.Glyphs) != 0 {
		t.Fatalf("expected empty page, got %#v", page)
	}
}

func TestDecodeRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("just some text, not a pdf"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := NewDecoder(Config{}, nil).Decode(context.Background(), path)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestNewDecoderDefaultsMaxPages(t *testing.T) {
	d := NewDecoder(Config{MaxPages: -1}, nil)
	if d.cfg.MaxPages != DefaultMaxPages {
		t.Fatalf("expected default max pages, got %d", d.cfg.MaxPages)
	}
}

func TestDecodeReadsPagesAndInfo(t *testing.T) {
	doc, err := NewDecoder(Config{}, nil).Decode(context.Background(), filepath.Join("testdata", "two_pages.pdf"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Info.Title != "Operator Manual" || doc.Info.Author != "ACME Docs" {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
	if doc.PageCount != 2 || len(doc.Pages) != 2 || doc.Truncated {
		t.Fatalf("unexpected page bookkeeping: count=%d pages=%d truncated=%v", doc.PageCount, len(doc.Pages), doc.Truncated)
	}
	first := doc.Pages[0]
	if first.Number != 1 || first.Text != "Chapter 1 Basics\nWelcome to the guide." {
		t.Fatalf("unexpected first page: %d %q", first.Number, first.Text)
	}
	if len(first.Glyphs) != 2 || first.Glyphs[0].Font != "Helvetica" || first.Glyphs[0].Transform[0] != 18 {
		t.Fatalf("unexpected first page glyphs: %+v", first.Glyphs)
	}
	if doc.Pages[1].Number != 2 || doc.Pages[1].Text != "Closing words, friends." {
		t.Fatalf("unexpected second page: %+v", doc.Pages[1])
	}
}

func TestDecodeTruncatesAtMaxPages(t *testing.T) {
	doc, err := NewDecoder(Config{MaxPages: 1}, nil).Decode(context.Background(), filepath.Join("testdata", "two_pages.pdf"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !doc.Truncated || doc.PageCount != 2 || len(doc.Pages) != 1 {
		t.Fatalf("expected truncation to one page, got truncated=%v count=%d pages=%d", doc.Truncated, doc.PageCount, len(doc.Pages))
	}
	if doc.Pages[0].Text != "Chapter 1 Basics\nWelcome to the guide." {
		t.Fatalf("unexpected kept page text %q", doc.Pages[0].Text)
	}
}

func TestDecodeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDecoder(Config{}, nil).Decode(ctx, filepath.Join("testdata", "two_pages.pdf"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
