package main

import (
	"fmt"
	"strings"

	"scriptdesk/internal/script"
)

// renderMarkdown lays a script out as a Markdown document with one level-two
// heading per section.
func renderMarkdown(result script.ConversionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", headingText(result.Title))
	if result.Author != "" {
		fmt.Fprintf(&b, "_By %s_\n\n", result.Author)
	}
	fmt.Fprintf(&b, "_Estimated speaking time: %s_\n", formatDuration(result.TotalDuration()))
	for _, s := range result.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", headingText(s.Title))
		fmt.Fprintf(&b, "_%s_\n", formatDuration(s.Duration))
		if content := strings.TrimSpace(s.Content); content != "" {
			b.WriteString("\n")
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// headingText flattens a title onto one line and drops any leading "#"
// markers it already carries, such as PDF page markers.
func headingText(title string) string {
	title = strings.TrimLeft(strings.TrimSpace(title), "#")
	return strings.Join(strings.Fields(title), " ")
}
