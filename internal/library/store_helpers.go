package library

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const scriptColumns = "id, title, author, source_path, source_format, sections_json, created_at, updated_at"

func scanScript(scanner interface{ Scan(dest ...any) error }) (*Script, error) {
	var (
		id           string
		title        string
		author       sql.NullString
		sourcePath   sql.NullString
		sourceFormat sql.NullString
		sectionsRaw  sql.NullString
		createdRaw   sql.NullString
		updatedRaw   sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&title,
		&author,
		&sourcePath,
		&sourceFormat,
		&sectionsRaw,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	sc := &Script{
		ID:           id,
		Title:        title,
		Author:       author.String,
		SourcePath:   sourcePath.String,
		SourceFormat: sourceFormat.String,
	}
	if sectionsRaw.Valid && sectionsRaw.String != "" {
		if err := json.Unmarshal([]byte(sectionsRaw.String), &sc.Sections); err != nil {
			return nil, fmt.Errorf("decode sections for %s: %w", id, err)
		}
	}

	if created, err := parseTimeString(createdRaw.String); err == nil {
		sc.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		sc.UpdatedAt = updated
	}
	return sc, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// timestampLayout is fixed width so ORDER BY on the text column is chronological.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func now() string {
	return time.Now().UTC().Format(timestampLayout)
}
