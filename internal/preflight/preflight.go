package preflight

import (
	"context"

	"scriptdesk/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes the directory and library checks for the given config.
// The library check only runs once its directory is usable.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	libraryDir := CheckDirectoryAccess("Library directory", cfg.Paths.LibraryDir)
	results := []Result{
		libraryDir,
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if libraryDir.Passed {
		results = append(results, CheckLibrary(ctx, cfg))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
