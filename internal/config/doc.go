// Package config loads, normalizes, and validates scriptdesk configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SCRIPTDESK_LIBRARY_DIR
// environment fallback. Conversion thresholds that the converter treats as
// tunable live in the [heuristics] table so they can be adjusted without a
// rebuild.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
