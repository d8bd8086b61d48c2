package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies how a source file is read.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
)

var (
	// ErrUnsupportedFormat is returned for extensions Detect does not know.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrFileTooLarge is returned when a source exceeds the import size limit.
	ErrFileTooLarge = errors.New("document exceeds size limit")
)

var extensions = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatText,
	".markdown": FormatText,
	".pdf":      FormatPDF,
}

// Detect maps a file extension to its Format.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensions[ext]; ok {
		return format, nil
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}
