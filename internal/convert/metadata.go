package convert

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var authorPattern = regexp.MustCompile(`(?i)(By|Author|Written by)[:\s]+(.+)`)

// Metadata is a best guess at document-level fields. Empty strings mean the
// field could not be found.
type Metadata struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// ExtractMetadata takes the first non-empty line as the title when it is
// shorter than MetadataTitleMaxLength runes, and the first "By", "Author", or
// "Written by" line as the author.
func (c *Converter) ExtractMetadata(text string) Metadata {
	var meta Metadata
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if utf8.RuneCountInString(trimmed) < c.h.MetadataTitleMaxLength {
			meta.Title = trimmed
		}
		break
	}
	if m := authorPattern.FindStringSubmatch(text); m != nil {
		meta.Author = strings.TrimSpace(m[2])
	}
	return meta
}

// ExtractMetadata uses the default thresholds.
func ExtractMetadata(text string) Metadata {
	return defaultConverter.ExtractMetadata(text)
}
