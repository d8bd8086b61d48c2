package config

import "scriptdesk/internal/convert"

const (
	defaultConfigPath      = "~/.config/scriptdesk/config.toml"
	defaultLibraryDir      = "~/.local/share/scriptdesk"
	defaultLogDir          = "~/.local/share/scriptdesk/logs"
	defaultDetectionMethod = string(convert.MethodHeadings)
	defaultMaxFileSizeMB   = 50
	defaultPDFMaxPages     = 500
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	h := convert.DefaultHeuristics()
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Conversion: Conversion{
			SplitBySections: true,
			DetectionMethod: defaultDetectionMethod,
			CleanFormatting: true,
			DefaultTitle:    convert.DefaultDocumentTitle,
		},
		Heuristics: Heuristics{
			WordsPerMinute:          h.WordsPerMinute,
			HeadingMaxLength:        h.HeadingMaxLength,
			HeadingMaxWords:         h.HeadingMaxWords,
			ParagraphTitleMaxLength: h.ParagraphTitleMaxLength,
			MetadataTitleMaxLength:  h.MetadataTitleMaxLength,
			HeadingFontRatio:        h.HeadingFontRatio,
		},
		PDF: PDF{
			CombinePages:    true,
			CleanWhitespace: true,
			PageMarkers:     true,
			MaxPages:        defaultPDFMaxPages,
		},
		Import: Import{
			MaxFileSizeMB: defaultMaxFileSizeMB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
