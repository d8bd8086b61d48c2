package pdfdoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"scriptdesk/internal/convert"
	"scriptdesk/internal/logging"
)

// ErrDecode is returned when a file cannot be parsed as a PDF.
var ErrDecode = errors.New("pdf decode failed")

// DefaultMaxPages bounds how many pages Decode reads when Config leaves it unset.
const DefaultMaxPages = 500

// Config holds decoder limits.
type Config struct {
	MaxPages int
}

// Info is the document information dictionary.
type Info struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// Document is a decoded PDF ready for conversion.
type Document struct {
	Info      Info
	Pages     []convert.Page
	PageCount int  // pages in the file, which may exceed len(Pages)
	Truncated bool // true when MaxPages stopped decoding early
}

// Decoder reads PDF files into positioned text.
type Decoder struct {
	cfg    Config
	logger *slog.Logger
}

// NewDecoder builds a decoder. A nil logger discards output.
func NewDecoder(cfg Config, logger *slog.Logger) *Decoder {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}
	return &Decoder{cfg: cfg, logger: logging.NewComponentLogger(logger, "pdfdoc")}
}

// Decode opens path and extracts the text of each page. Malformed files
// surface as ErrDecode, including ones that make the parser panic. The
// context is checked between pages.
func (d *Decoder) Decode(ctx context.Context, path string) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %s: %v", ErrDecode, path, r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer file.Close()

	total := reader.NumPage()
	doc = &Document{Info: readInfo(reader), PageCount: total}
	limit := total
	if limit > d.cfg.MaxPages {
		limit = d.cfg.MaxPages
		doc.Truncated = true
		logging.WarnWithContext(d.logger, "pdf page limit reached", "pdf_truncated",
			logging.String(logging.FieldSource, path),
			logging.Int("pages", total),
			logging.Int("max_pages", d.cfg.MaxPages),
			logging.String(logging.FieldImpact, "later pages are not converted"),
			logging.String(logging.FieldErrorHint, "raise pdf.max_pages in the config"),
		)
	}

	doc.Pages = make([]convert.Page, 0, limit)
	for i := 1; i <= limit; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, convert.Page{Number: i})
			continue
		}
		doc.Pages = append(doc.Pages, AssemblePage(i, toRuns(page.Content().Text)))
	}

	d.logger.Debug("pdf decoded",
		logging.String(logging.FieldSource, path),
		logging.Int("pages", len(doc.Pages)),
	)
	return doc, nil
}

func toRuns(texts []pdf.Text) []Run {
	runs := make([]Run, 0, len(texts))
	for _, t := range texts {
		runs = append(runs, Run{
			Font: t.Font,
			Size: t.FontSize,
			X:    t.X,
			Y:    t.Y,
			W:    t.W,
			S:    t.S,
		})
	}
	return runs
}

func readInfo(reader *pdf.Reader) Info {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return Info{}
	}
	return Info{
		Title:  strings.TrimSpace(info.Key("Title").Text()),
		Author: strings.TrimSpace(info.Key("Author").Text()),
	}
}
