package convert

import (
	"math"
	"strings"
)

// WordCount returns the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// EstimateDuration returns the seconds needed to speak text at the
// converter's words-per-minute rate, rounded to the nearest second.
func (c *Converter) EstimateDuration(text string) int {
	words := WordCount(text)
	if words == 0 {
		return 0
	}
	return int(math.Round(float64(words) / c.h.WordsPerMinute * 60))
}

// EstimateDuration uses the default 130 words per minute.
func EstimateDuration(text string) int {
	return defaultConverter.EstimateDuration(text)
}
