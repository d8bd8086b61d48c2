package convert

import (
	"strings"
	"testing"
)

func TestExtractMetadata(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Metadata
	}{
		{
			name: "written by line is also the title",
			text: "Written by: Jane Doe\nSome content",
			want: Metadata{Title: "Written by: Jane Doe", Author: "Jane Doe"},
		},
		{
			name: "title and author",
			text: "\n\n  My Talk  \nBy John Smith\nBody.",
			want: Metadata{Title: "My Talk", Author: "John Smith"},
		},
		{
			name: "author keyword case insensitive",
			text: "Notes\nAUTHOR: Ada Lovelace\r\n",
			want: Metadata{Title: "Notes", Author: "Ada Lovelace"},
		},
		{
			name: "long first line has no title",
			text: strings.Repeat("x", 80) + "\nrest",
			want: Metadata{},
		},
		{
			name: "empty",
			text: "",
			want: Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMetadata(tt.text); got != tt.want {
				t.Errorf("ExtractMetadata() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractMetadataTitleLimit(t *testing.T) {
	line := strings.Repeat("y", 79)
	if got := ExtractMetadata(line).Title; got != line {
		t.Fatalf("expected 79-rune title to be kept, got %q", got)
	}
}
