package config

import (
	"errors"
	"fmt"

	"scriptdesk/internal/convert"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	if err := c.validateHeuristics(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConversion() error {
	if _, err := convert.ParseDetectionMethod(c.Conversion.DetectionMethod); err != nil {
		return fmt.Errorf("conversion.detection_method: %w", err)
	}
	return nil
}

func (c *Config) validateHeuristics() error {
	if c.Heuristics.WordsPerMinute <= 0 {
		return errors.New("heuristics.words_per_minute must be positive")
	}
	if err := ensurePositiveMap(map[string]int{
		"heuristics.heading_max_length":         c.Heuristics.HeadingMaxLength,
		"heuristics.heading_max_words":          c.Heuristics.HeadingMaxWords,
		"heuristics.paragraph_title_max_length": c.Heuristics.ParagraphTitleMaxLength,
		"heuristics.metadata_title_max_length":  c.Heuristics.MetadataTitleMaxLength,
	}); err != nil {
		return err
	}
	if c.Heuristics.HeadingFontRatio <= 1 {
		return errors.New("heuristics.heading_font_ratio must be greater than 1")
	}
	return nil
}

func (c *Config) validateLimits() error {
	return ensurePositiveMap(map[string]int{
		"import.max_file_size_mb": c.Import.MaxFileSizeMB,
		"pdf.max_pages":           c.PDF.MaxPages,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
