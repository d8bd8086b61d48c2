package convert

import (
	"math"
	"strings"
	"testing"
)

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", " \n\t  ", 0},
		{"six words", "Hello world this is a test.", 3},
		{"extra whitespace ignored", "  Hello\n\nworld\tthis   is a test. ", 3},
		{"one minute", strings.Repeat("word ", 130), 60},
		{"thirteen words", strings.Repeat("word ", 13), 6},
		{"three words round down", "one two three", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDuration(tt.text); got != tt.want {
				t.Errorf("EstimateDuration(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimateDurationMatchesFormula(t *testing.T) {
	for words := 0; words < 400; words += 7 {
		text := strings.Repeat("lorem ", words)
		want := int(math.Round(float64(words) / 130 * 60))
		if got := EstimateDuration(text); got != want {
			t.Fatalf("words=%d: got %d want %d", words, got, want)
		}
	}
}

func TestEstimateDurationCustomRate(t *testing.T) {
	c := New(Heuristics{WordsPerMinute: 60})
	if got := c.EstimateDuration("one two three"); got != 3 {
		t.Fatalf("EstimateDuration at 60 wpm = %d, want 3", got)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("a  b\nc\t\td"); got != 4 {
		t.Fatalf("WordCount = %d, want 4", got)
	}
	if got := WordCount(""); got != 0 {
		t.Fatalf("WordCount(empty) = %d, want 0", got)
	}
}

func TestNewDefaultsUnsetHeuristics(t *testing.T) {
	h := New(Heuristics{HeadingMaxWords: 3}).Heuristics()
	if h.HeadingMaxWords != 3 {
		t.Fatalf("HeadingMaxWords = %d, want 3", h.HeadingMaxWords)
	}
	if h.WordsPerMinute != DefaultWordsPerMinute {
		t.Fatalf("WordsPerMinute = %v, want default", h.WordsPerMinute)
	}
	if h.HeadingMaxLength != DefaultHeadingMaxLength || h.HeadingFontRatio != DefaultHeadingFontRatio {
		t.Fatalf("expected defaults, got %+v", h)
	}
}
