package textutil

import "testing"

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/talks/quarterly_update-2024.txt", "Quarterly Update 2024"},
		{"keynote.draft.md", "Keynote Draft"},
		{"/docs/don't panic.pdf", "Don't Panic"},
		{"/docs/APIs overview.txt", "APIs Overview"},
		{"/docs/___.txt", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleFromPath(tt.path); got != tt.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Intro: Part 1/2", "Intro- Part 1-2"},
		{`What? "Now" <ok>|`, "What Now ok"},
		{"  ..  ", "script"},
		{"", "script"},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.name); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
