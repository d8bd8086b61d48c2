package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scriptdesk/internal/script"
)

// Create inserts a new script, assigning its ID and timestamps.
func (s *Store) Create(ctx context.Context, sc *Script) (*Script, error) {
	if sc == nil {
		return nil, errors.New("script is nil")
	}
	title := strings.TrimSpace(sc.Title)
	if title == "" {
		return nil, errors.New("script title is required")
	}
	sectionsJSON, err := encodeSections(sc.Sections)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	timestamp := now()
	if _, err := s.execWithRetry(
		ctx,
		`INSERT INTO scripts (
            id, title, author, source_path, source_format,
            sections_json, section_count, total_duration, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		title,
		nullableString(sc.Author),
		nullableString(sc.SourcePath),
		nullableString(sc.SourceFormat),
		sectionsJSON,
		len(sc.Sections),
		script.TotalDuration(sc.Sections),
		timestamp,
		timestamp,
	); err != nil {
		return nil, fmt.Errorf("insert script: %w", err)
	}

	return s.Get(ctx, id)
}

// Get fetches a script by identifier.
func (s *Store) Get(ctx context.Context, id string) (*Script, error) {
	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+scriptColumns+` FROM scripts WHERE id = ?`, id)
	sc, err := scanScript(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get script: %w", err)
	}
	return sc, nil
}

// Resolve fetches a script by full ID or by a unique ID prefix.
func (s *Store) Resolve(ctx context.Context, ref string) (*Script, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	rows, err := s.db.QueryContext(ensureContext(ctx), `SELECT id FROM scripts WHERE id LIKE ? ESCAPE '\' LIMIT 2`, escapeLike(ref)+"%")
	if err != nil {
		return nil, fmt.Errorf("resolve script: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan script id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate script ids: %w", err)
	}
	switch len(ids) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return s.Get(ctx, ids[0])
	default:
		return nil, fmt.Errorf("script id prefix %q is ambiguous", ref)
	}
}

// FindBySource returns the most recently updated script imported from path,
// or nil when none exists.
func (s *Store) FindBySource(ctx context.Context, sourcePath string) (*Script, error) {
	row := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT `+scriptColumns+` FROM scripts WHERE source_path = ? ORDER BY updated_at DESC LIMIT 1`,
		sourcePath,
	)
	sc, err := scanScript(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by source: %w", err)
	}
	return sc, nil
}

// List returns summaries of every script, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(
		ensureContext(ctx),
		`SELECT id, title, author, source_format, section_count, total_duration, updated_at
         FROM scripts ORDER BY updated_at DESC, title`,
	)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			summary      Summary
			author       sql.NullString
			sourceFormat sql.NullString
			updatedRaw   sql.NullString
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&author,
			&sourceFormat,
			&summary.SectionCount,
			&summary.TotalDuration,
			&updatedRaw,
		); err != nil {
			return nil, fmt.Errorf("scan script summary: %w", err)
		}
		summary.Author = author.String
		summary.SourceFormat = sourceFormat.String
		if updated, err := parseTimeString(updatedRaw.String); err == nil {
			summary.UpdatedAt = updated
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scripts: %w", err)
	}
	return summaries, nil
}

// ReplaceSections swaps the whole section list of a script and refreshes its
// update timestamp.
func (s *Store) ReplaceSections(ctx context.Context, id string, sections []script.Section) (*Script, error) {
	sectionsJSON, err := encodeSections(sections)
	if err != nil {
		return nil, err
	}
	res, err := s.execWithRetry(
		ctx,
		`UPDATE scripts SET sections_json = ?, section_count = ?, total_duration = ?, updated_at = ? WHERE id = ?`,
		sectionsJSON,
		len(sections),
		script.TotalDuration(sections),
		now(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("replace sections: %w", err)
	}
	if err := requireAffected(res, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Rename changes a script title.
func (s *Store) Rename(ctx context.Context, id, title string) (*Script, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("script title is required")
	}
	res, err := s.execWithRetry(
		ctx,
		`UPDATE scripts SET title = ?, updated_at = ? WHERE id = ?`,
		title,
		now(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("rename script: %w", err)
	}
	if err := requireAffected(res, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a script.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.execWithRetry(ctx, `DELETE FROM scripts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete script: %w", err)
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func encodeSections(sections []script.Section) (string, error) {
	if sections == nil {
		sections = []script.Section{}
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("marshal sections: %w", err)
	}
	return string(data), nil
}
