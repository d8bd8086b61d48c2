package config

import (
	"fmt"
	"os"
	"strings"

	"scriptdesk/internal/convert"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeConversion()
	c.normalizeHeuristics()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		if value, ok := os.LookupEnv("SCRIPTDESK_LIBRARY_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.LibraryDir = strings.TrimSpace(value)
		} else {
			c.Paths.LibraryDir = defaultLibraryDir
		}
	}
	if c.Paths.LibraryDir, err = expandPath(c.Paths.LibraryDir); err != nil {
		return fmt.Errorf("paths.library_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeConversion() {
	c.Conversion.DetectionMethod = strings.ToLower(strings.TrimSpace(c.Conversion.DetectionMethod))
	if c.Conversion.DetectionMethod == "" {
		c.Conversion.DetectionMethod = defaultDetectionMethod
	}
	c.Conversion.DefaultTitle = strings.TrimSpace(c.Conversion.DefaultTitle)
	if c.Conversion.DefaultTitle == "" {
		c.Conversion.DefaultTitle = convert.DefaultDocumentTitle
	}
}

// normalizeHeuristics leaves negative values alone so Validate can report them.
func (c *Config) normalizeHeuristics() {
	def := convert.DefaultHeuristics()
	if c.Heuristics.WordsPerMinute == 0 {
		c.Heuristics.WordsPerMinute = def.WordsPerMinute
	}
	if c.Heuristics.HeadingMaxLength == 0 {
		c.Heuristics.HeadingMaxLength = def.HeadingMaxLength
	}
	if c.Heuristics.HeadingMaxWords == 0 {
		c.Heuristics.HeadingMaxWords = def.HeadingMaxWords
	}
	if c.Heuristics.ParagraphTitleMaxLength == 0 {
		c.Heuristics.ParagraphTitleMaxLength = def.ParagraphTitleMaxLength
	}
	if c.Heuristics.MetadataTitleMaxLength == 0 {
		c.Heuristics.MetadataTitleMaxLength = def.MetadataTitleMaxLength
	}
	if c.Heuristics.HeadingFontRatio == 0 {
		c.Heuristics.HeadingFontRatio = def.HeadingFontRatio
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
