package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"scriptdesk/internal/convert"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LibraryDir string `toml:"library_dir"`
	LogDir     string `toml:"log_dir"`
}

// Conversion contains the default options applied to text documents.
type Conversion struct {
	SplitBySections bool   `toml:"split_by_sections"`
	DetectionMethod string `toml:"detection_method"`
	CleanFormatting bool   `toml:"clean_formatting"`
	DefaultTitle    string `toml:"default_title"`
}

// Heuristics exposes the converter thresholds. Zero values fall back to the
// converter defaults.
type Heuristics struct {
	WordsPerMinute          float64 `toml:"words_per_minute"`
	HeadingMaxLength        int     `toml:"heading_max_length"`
	HeadingMaxWords         int     `toml:"heading_max_words"`
	ParagraphTitleMaxLength int     `toml:"paragraph_title_max_length"`
	MetadataTitleMaxLength  int     `toml:"metadata_title_max_length"`
	HeadingFontRatio        float64 `toml:"heading_font_ratio"`
}

// PDF contains options for the PDF pipeline.
type PDF struct {
	CombinePages    bool `toml:"combine_pages"`
	CleanWhitespace bool `toml:"clean_whitespace"`
	PageMarkers     bool `toml:"page_markers"`
	FontAnalysis    bool `toml:"font_analysis"`
	MaxPages        int  `toml:"max_pages"`
}

// Import contains limits for file ingestion.
type Import struct {
	MaxFileSizeMB int `toml:"max_file_size_mb"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for scriptdesk.
//
// Configuration sections:
//   - Paths: script library and log directories
//   - Conversion: default section-splitting options for text documents
//   - Heuristics: heading, title, and speaking-rate thresholds
//   - PDF: page combining, whitespace cleanup, and font analysis
//   - Import: file size limits
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Conversion Conversion `toml:"conversion"`
	Heuristics Heuristics `toml:"heuristics"`
	PDF        PDF        `toml:"pdf"`
	Import     Import     `toml:"import"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("scriptdesk.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the library and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LibraryDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LibraryPath returns the SQLite database holding saved scripts.
func (c *Config) LibraryPath() string {
	return filepath.Join(c.Paths.LibraryDir, "scripts.db")
}

// LockPath returns the lock file guarding library imports.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LibraryDir, "import.lock")
}

// MaxFileSize returns the import size limit in bytes.
func (c *Config) MaxFileSize() int64 {
	return int64(c.Import.MaxFileSizeMB) << 20
}

// ConverterHeuristics maps the [heuristics] table onto converter thresholds.
func (c *Config) ConverterHeuristics() convert.Heuristics {
	return convert.Heuristics{
		WordsPerMinute:          c.Heuristics.WordsPerMinute,
		HeadingMaxLength:        c.Heuristics.HeadingMaxLength,
		HeadingMaxWords:         c.Heuristics.HeadingMaxWords,
		ParagraphTitleMaxLength: c.Heuristics.ParagraphTitleMaxLength,
		MetadataTitleMaxLength:  c.Heuristics.MetadataTitleMaxLength,
		HeadingFontRatio:        c.Heuristics.HeadingFontRatio,
	}
}

// ConversionOptions returns the configured text conversion options.
func (c *Config) ConversionOptions() convert.Options {
	method, err := convert.ParseDetectionMethod(c.Conversion.DetectionMethod)
	if err != nil {
		method = convert.MethodHeadings
	}
	return convert.Options{
		SplitBySections: c.Conversion.SplitBySections,
		DetectionMethod: method,
		CleanFormatting: c.Conversion.CleanFormatting,
		DocumentTitle:   c.Conversion.DefaultTitle,
	}
}

// PDFOptions returns the configured PDF conversion options.
func (c *Config) PDFOptions() convert.PDFOptions {
	return convert.PDFOptions{
		CombinePages:    c.PDF.CombinePages,
		CleanWhitespace: c.PDF.CleanWhitespace,
		PageMarkers:     c.PDF.PageMarkers,
		FontAnalysis:    c.PDF.FontAnalysis,
		DocumentTitle:   c.Conversion.DefaultTitle,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
