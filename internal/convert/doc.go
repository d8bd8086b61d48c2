// Package convert turns document text into timed scripts.
//
// The conversion runs in a single forward pass over in-memory text:
//   - EstimateDuration derives speaking time from word counts
//   - Clean normalizes whitespace and line endings
//   - DetectHeadings finds heading-like lines and their byte offsets
//   - ExtractMetadata guesses a title and author from the leading lines
//   - BuildSections combines the above into ordered sections
//
// ConvertPages is the PDF variant: it works over per-page text plus glyph
// font metadata supplied by a decoder and adds chapter, page-marker, and
// optional font-size heading triggers.
//
// Every exported function is total. Empty or malformed input degrades to a
// single fallback section instead of an error; file and decoder failures
// belong to the caller. Thresholds live in Heuristics so callers can tune
// them through configuration.
package convert
