package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"scriptdesk/internal/convert"
	"scriptdesk/internal/script"
)

const (
	ansiReset = "\033[0m"
	ansiBlue  = "\033[34m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func colorStatus(passed bool, colorize bool) string {
	label, color := "FAIL", ansiRed
	if passed {
		label, color = "OK", ansiGreen
	}
	if !colorize {
		return label
	}
	return color + label + ansiReset
}

// formatDuration renders seconds as m:ss, or h:mm:ss past an hour.
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatDisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func buildSectionRows(sections []script.Section) [][]string {
	rows := make([][]string, 0, len(sections))
	for i, s := range sections {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Title,
			strconv.Itoa(convert.WordCount(s.Content)),
			formatDuration(s.Duration),
		})
	}
	return rows
}

// printScript writes a header, optional author and source lines, and the
// section table.
func printScript(out io.Writer, result script.ConversionResult, source string, colorize bool) {
	for _, line := range renderSectionHeader(result.Title, colorize) {
		fmt.Fprintln(out, line)
	}
	if result.Author != "" {
		fmt.Fprintf(out, "Author: %s\n", result.Author)
	}
	if source != "" {
		fmt.Fprintf(out, "Source: %s\n", source)
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Section", "Words", "Duration"},
		buildSectionRows(result.Sections),
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
	))
	fmt.Fprintf(out, "Total: %d sections, %s\n", len(result.Sections), formatDuration(result.TotalDuration()))
}

func printFontStats(out io.Writer, stats convert.FontStats) {
	rows := make([][]string, 0, len(stats.FontScales))
	for _, font := range sortedKeys(stats.FontScales) {
		heading := ""
		if stats.IsHeadingFont(font) {
			heading = "yes"
		}
		rows = append(rows, []string{font, strconv.FormatFloat(stats.FontScales[font], 'f', 1, 64), heading})
	}
	fmt.Fprintf(out, "Average glyph scale: %.1f\n", stats.AverageScale)
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable([]string{"Font", "Scale", "Heading"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
