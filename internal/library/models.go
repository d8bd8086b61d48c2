package library

import (
	"time"

	"scriptdesk/internal/script"
)

// Script is a converted document saved in the library.
type Script struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Author       string           `json:"author,omitempty"`
	SourcePath   string           `json:"source_path,omitempty"`
	SourceFormat string           `json:"source_format,omitempty"`
	Sections     []script.Section `json:"sections"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TotalDuration returns the estimated speaking time of all sections in seconds.
func (s *Script) TotalDuration() int {
	if s == nil {
		return 0
	}
	return script.TotalDuration(s.Sections)
}

// Summary is the lightweight listing form of a script. Sections are not
// decoded.
type Summary struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author,omitempty"`
	SourceFormat  string    `json:"source_format,omitempty"`
	SectionCount  int       `json:"section_count"`
	TotalDuration int       `json:"total_duration"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewScript prepares a library script from a conversion result. ID and
// timestamps are assigned by Store.Create.
func NewScript(result script.ConversionResult, sourcePath, sourceFormat string) *Script {
	sections := make([]script.Section, len(result.Sections))
	copy(sections, result.Sections)
	return &Script{
		Title:        result.Title,
		Author:       result.Author,
		SourcePath:   sourcePath,
		SourceFormat: sourceFormat,
		Sections:     sections,
	}
}
