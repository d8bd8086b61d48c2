// Package textutil provides small text helpers shared by the ingest and CLI
// layers: filename sanitization for exports and title derivation from file
// paths.
package textutil
