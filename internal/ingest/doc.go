// Package ingest turns files on disk into conversion results.
//
// It owns the parts of conversion that touch the outside world: format
// detection by extension, size limits, text decoding, and PDF extraction.
// The converter itself only ever sees strings and decoded pages.
package ingest
