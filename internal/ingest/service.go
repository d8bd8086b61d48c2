package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"scriptdesk/internal/config"
	"scriptdesk/internal/convert"
	"scriptdesk/internal/logging"
	"scriptdesk/internal/pdfdoc"
	"scriptdesk/internal/script"
	"scriptdesk/internal/textutil"
)

// Request carries per-invocation overrides on top of the configured defaults.
type Request struct {
	// Title replaces whatever title the document yields and also names any
	// fallback section.
	Title string
	// Method overrides conversion.detection_method when non-empty.
	Method string
	// NoSplit keeps a text document in one section. PDFs ignore it.
	NoSplit bool
	NoClean bool
	// SeparatePages emits one section per PDF page.
	SeparatePages bool
	// FontAnalysis enables font-size heading triggers for PDFs.
	FontAnalysis bool
}

// Result is a converted document with its provenance.
type Result struct {
	Format    Format                  `json:"format"`
	Source    string                  `json:"source"`
	Script    script.ConversionResult `json:"script"`
	Pages     int                     `json:"pages,omitempty"`
	Truncated bool                    `json:"truncated,omitempty"`
	Fonts     *convert.FontStats      `json:"fonts,omitempty"`
}

type pdfDecoder interface {
	Decode(ctx context.Context, path string) (*pdfdoc.Document, error)
}

// Service converts files using configured heuristics.
type Service struct {
	cfg       *config.Config
	converter *convert.Converter
	pdf       pdfDecoder
	logger    *slog.Logger
}

// NewService builds a Service. A nil logger discards output.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		cfg:       cfg,
		converter: convert.New(cfg.ConverterHeuristics()),
		pdf:       pdfdoc.NewDecoder(pdfdoc.Config{MaxPages: cfg.PDF.MaxPages}, logger),
		logger:    logging.NewComponentLogger(logger, "ingest"),
	}
}

// Convert reads path and converts it. Errors from the filesystem and the PDF
// decoder are wrapped with the source path.
func (s *Service) Convert(ctx context.Context, path string, req Request) (*Result, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := s.checkSize(abs); err != nil {
		return nil, err
	}

	textOpts, err := s.textOptions(req)
	if err != nil {
		return nil, err
	}
	fallbackTitle := firstNonEmpty(req.Title, textutil.TitleFromPath(abs), s.cfg.Conversion.DefaultTitle)

	result := &Result{Format: format, Source: abs}
	switch format {
	case FormatPDF:
		if err := s.convertPDF(ctx, abs, req, textOpts, fallbackTitle, result); err != nil {
			return nil, err
		}
	default:
		text, err := readText(abs)
		if err != nil {
			return nil, err
		}
		textOpts.DocumentTitle = fallbackTitle
		result.Script = s.converter.Convert(text, textOpts)
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		result.Script.Title = title
	}

	logging.WithContext(logging.WithSource(ctx, abs), s.logger).Info("document converted",
		logging.String("format", string(format)),
		logging.String("title", result.Script.Title),
		logging.Int("sections", len(result.Script.Sections)),
		logging.Int("total_duration", result.Script.TotalDuration()),
	)
	return result, nil
}

func (s *Service) convertPDF(ctx context.Context, path string, req Request, textOpts convert.Options, fallbackTitle string, result *Result) error {
	doc, err := s.pdf.Decode(ctx, path)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	opts := s.cfg.PDFOptions()
	opts.CleanWhitespace = opts.CleanWhitespace && textOpts.CleanFormatting
	if req.SeparatePages {
		opts.CombinePages = false
	}
	if req.FontAnalysis {
		opts.FontAnalysis = true
	}
	opts.DocumentTitle = firstNonEmpty(req.Title, doc.Info.Title, fallbackTitle)

	result.Script = s.converter.ConvertPages(doc.Pages, opts)
	if result.Script.Author == "" {
		result.Script.Author = doc.Info.Author
	}
	result.Pages = doc.PageCount
	result.Truncated = doc.Truncated
	if opts.FontAnalysis {
		stats := s.converter.AnalyzeFonts(doc.Pages)
		result.Fonts = &stats
	}
	return nil
}

func (s *Service) textOptions(req Request) (convert.Options, error) {
	opts := s.cfg.ConversionOptions()
	if strings.TrimSpace(req.Method) != "" {
		method, err := convert.ParseDetectionMethod(req.Method)
		if err != nil {
			return convert.Options{}, err
		}
		opts.DetectionMethod = method
	}
	if req.NoSplit {
		opts.SplitBySections = false
	}
	if req.NoClean {
		opts.CleanFormatting = false
	}
	return opts, nil
}

func (s *Service) checkSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if limit := s.cfg.MaxFileSize(); limit > 0 && info.Size() > limit {
		return fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, filepath.Base(path), info.Size(), limit)
	}
	return nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "\uFFFD")
	}
	return text, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
