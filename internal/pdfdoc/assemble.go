package pdfdoc

import (
	"math"
	"sort"
	"strings"

	"scriptdesk/internal/convert"
)

// Run is one positioned piece of text as reported by the PDF content stream.
// Y grows upward, so the first line on a page has the largest Y.
type Run struct {
	Font string
	Size float64
	X    float64
	Y    float64
	W    float64
	S    string
}

const (
	lineTolerance  = 0.5 // fraction of font size two baselines may differ within one line
	wordGapRatio   = 0.15
	paragraphRatio = 1.8
)

type line struct {
	y    float64
	size float64
	runs []Run
}

// AssemblePage groups runs into lines by baseline, orders them top to bottom
// and left to right, and returns the page text with one glyph entry per
// same-font stretch of each line. A vertical gap larger than paragraphRatio
// line heights becomes a blank line.
func AssemblePage(number int, runs []Run) convert.Page {
	lines := groupLines(runs)

	var text strings.Builder
	var glyphs []convert.Glyph
	for i, ln := range lines {
		if i > 0 {
			text.WriteByte('\n')
			prev := lines[i-1]
			if prev.y-ln.y > paragraphRatio*math.Max(prev.size, ln.size) {
				text.WriteByte('\n')
			}
		}
		lineText, lineGlyphs := assembleLine(ln)
		text.WriteString(lineText)
		glyphs = append(glyphs, lineGlyphs...)
	}
	return convert.Page{Number: number, Text: text.String(), Glyphs: glyphs}
}

func groupLines(runs []Run) []line {
	kept := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.S == "" {
			continue
		}
		kept = append(kept, r)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Y > kept[j].Y
	})

	var lines []line
	for _, r := range kept {
		if n := len(lines); n > 0 {
			cur := &lines[n-1]
			tol := lineTolerance * math.Max(math.Max(cur.size, r.Size), 1)
			if math.Abs(cur.y-r.Y) <= tol {
				cur.runs = append(cur.runs, r)
				cur.size = math.Max(cur.size, r.Size)
				continue
			}
		}
		lines = append(lines, line{y: r.Y, size: r.Size, runs: []Run{r}})
	}
	for i := range lines {
		runs := lines[i].runs
		sort.SliceStable(runs, func(a, b int) bool { return runs[a].X < runs[b].X })
	}
	return lines
}

func assembleLine(ln line) (string, []convert.Glyph) {
	var (
		text    strings.Builder
		glyphs  []convert.Glyph
		current strings.Builder
		font    string
		size    float64
		x, y    float64
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			glyphs = append(glyphs, convert.Glyph{
				Text:      s,
				Font:      font,
				Transform: []float64{size, 0, 0, size, x, y},
			})
		}
		current.Reset()
	}

	for i, r := range ln.runs {
		if i > 0 {
			prev := ln.runs[i-1]
			gap := r.X - (prev.X + prev.W)
			if gap > wordGapRatio*math.Max(prev.Size, 1) && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(r.S, " ") {
				text.WriteByte(' ')
				current.WriteByte(' ')
			}
		}
		if i == 0 || r.Font != font || r.Size != size {
			if i > 0 {
				flush()
			}
			font, size, x, y = r.Font, r.Size, r.X, r.Y
		}
		text.WriteString(r.S)
		current.WriteString(r.S)
	}
	flush()
	return strings.TrimSpace(text.String()), glyphs
}
