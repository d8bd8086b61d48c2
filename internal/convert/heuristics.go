package convert

const (
	// DefaultWordsPerMinute is the assumed constant speaking rate.
	DefaultWordsPerMinute = 130
	// DefaultHeadingMaxLength is the exclusive rune limit for a heading line.
	DefaultHeadingMaxLength = 60
	// DefaultHeadingMaxWords is the exclusive word limit for a heading line.
	DefaultHeadingMaxWords = 8
	// DefaultParagraphTitleMaxLength is the exclusive rune limit for a leading
	// paragraph to be promoted to a title in paragraph mode.
	DefaultParagraphTitleMaxLength = 100
	// DefaultMetadataTitleMaxLength is the exclusive rune limit for the first
	// line to count as the document title.
	DefaultMetadataTitleMaxLength = 80
	// DefaultHeadingFontRatio is how far above the document's average glyph
	// scale a font must sit to be treated as a heading font.
	DefaultHeadingFontRatio = 1.2
)

// Heuristics holds the tunable thresholds used during conversion.
// Zero or negative values fall back to the defaults above.
type Heuristics struct {
	WordsPerMinute          float64
	HeadingMaxLength        int
	HeadingMaxWords         int
	ParagraphTitleMaxLength int
	MetadataTitleMaxLength  int
	HeadingFontRatio        float64
}

// DefaultHeuristics returns the stock thresholds.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		WordsPerMinute:          DefaultWordsPerMinute,
		HeadingMaxLength:        DefaultHeadingMaxLength,
		HeadingMaxWords:         DefaultHeadingMaxWords,
		ParagraphTitleMaxLength: DefaultParagraphTitleMaxLength,
		MetadataTitleMaxLength:  DefaultMetadataTitleMaxLength,
		HeadingFontRatio:        DefaultHeadingFontRatio,
	}
}

func (h Heuristics) withDefaults() Heuristics {
	def := DefaultHeuristics()
	if h.WordsPerMinute <= 0 {
		h.WordsPerMinute = def.WordsPerMinute
	}
	if h.HeadingMaxLength <= 0 {
		h.HeadingMaxLength = def.HeadingMaxLength
	}
	if h.HeadingMaxWords <= 0 {
		h.HeadingMaxWords = def.HeadingMaxWords
	}
	if h.ParagraphTitleMaxLength <= 0 {
		h.ParagraphTitleMaxLength = def.ParagraphTitleMaxLength
	}
	if h.MetadataTitleMaxLength <= 0 {
		h.MetadataTitleMaxLength = def.MetadataTitleMaxLength
	}
	if h.HeadingFontRatio <= 0 {
		h.HeadingFontRatio = def.HeadingFontRatio
	}
	return h
}

// Converter applies one set of Heuristics. The zero value is not usable;
// construct with New. A Converter holds no mutable state and is safe for
// concurrent use.
type Converter struct {
	h Heuristics
}

// New returns a Converter using h, with unset thresholds defaulted.
func New(h Heuristics) *Converter {
	return &Converter{h: h.withDefaults()}
}

// Heuristics reports the effective thresholds.
func (c *Converter) Heuristics() Heuristics {
	return c.h
}

var defaultConverter = New(DefaultHeuristics())
