package convert

import (
	"regexp"
	"strings"
)

var (
	lineEndingReplacer   = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	multiSpacePattern    = regexp.MustCompile(` {2,}`)
	excessNewlinePattern = regexp.MustCompile(`\n{3,}`)
	spaceBeforeNewline   = regexp.MustCompile(`[ \t]+\n`)
	spaceAfterNewline    = regexp.MustCompile(`\n[ \t]+`)
)

// Clean normalizes line endings to \n, expands tabs to four spaces, collapses
// runs of spaces, trims every line, limits blank runs to a single empty line,
// and trims the result. Clean is idempotent.
//
// Lines are trimmed before blank runs are collapsed so that whitespace-only
// lines cannot reintroduce a triple newline on a second pass.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = lineEndingReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\t", "    ")
	text = multiSpacePattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = excessNewlinePattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// CleanPDF strips the stray spaces PDF extraction leaves around line breaks
// and then applies Clean.
func CleanPDF(text string) string {
	text = lineEndingReplacer.Replace(text)
	text = spaceBeforeNewline.ReplaceAllString(text, "\n")
	text = spaceAfterNewline.ReplaceAllString(text, "\n")
	return Clean(text)
}

func trimOnly(text string) string {
	return strings.TrimSpace(text)
}

func preparer(clean bool) func(string) string {
	if clean {
		return Clean
	}
	return trimOnly
}
