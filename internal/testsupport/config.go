package testsupport

import (
	"path/filepath"
	"testing"

	"scriptdesk/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LibraryDir = filepath.Join(base, "library")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDetectionMethod overrides the default section detection method.
func WithDetectionMethod(method string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Conversion.DetectionMethod = method
	}
}

// WithMaxFileSizeMB overrides the import size limit.
func WithMaxFileSizeMB(mb int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Import.MaxFileSizeMB = mb
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LibraryDir)
}
