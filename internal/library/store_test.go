package library_test

import (
	"context"
	"errors"
	"testing"

	"scriptdesk/internal/library"
	"scriptdesk/internal/script"
	"scriptdesk/internal/testsupport"
)

func TestCreateAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	result := script.ConversionResult{
		Title:  "Quarterly Update",
		Author: "Jane Doe",
		Sections: []script.Section{
			{Title: "Intro", Content: "Welcome everyone.", Duration: 1},
			{Title: "Numbers", Content: "Revenue grew.", Duration: 1},
		},
	}
	created, err := store.Create(ctx, library.NewScript(result, "/docs/update.txt", "text"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected script ID to be assigned")
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("unexpected timestamps: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}

	fetched, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.Title != "Quarterly Update" || fetched.Author != "Jane Doe" {
		t.Fatalf("unexpected fetched script: %#v", fetched)
	}
	if fetched.SourceFormat != "text" || fetched.SourcePath != "/docs/update.txt" {
		t.Fatalf("unexpected source fields: %#v", fetched)
	}
	if len(fetched.Sections) != 2 || fetched.Sections[1].Title != "Numbers" {
		t.Fatalf("unexpected sections: %#v", fetched.Sections)
	}
	if fetched.TotalDuration() != 2 {
		t.Fatalf("expected total duration 2, got %d", fetched.TotalDuration())
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	if _, err := store.Create(context.Background(), &library.Script{Title: "   "}); err == nil {
		t.Fatal("expected error when title missing")
	}
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)

	_, err := store.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindBySource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	missing, err := store.FindBySource(ctx, "/docs/none.txt")
	if err != nil {
		t.Fatalf("FindBySource failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown source, got %#v", missing)
	}

	created, err := store.Create(ctx, &library.Script{Title: "Talk", SourcePath: "/docs/talk.md", SourceFormat: "text"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	found, err := store.FindBySource(ctx, "/docs/talk.md")
	if err != nil {
		t.Fatalf("FindBySource failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected to find created script, got %#v", found)
	}
}

func TestListOrdersByUpdatedAt(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	first := testsupport.NewScript(t, store, "First", script.Section{Title: "A", Content: "a", Duration: 5})
	testsupport.NewScript(t, store, "Second")
	if _, err := store.Rename(ctx, first.ID, "First (revised)"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Title != "First (revised)" {
		t.Fatalf("expected renamed script first, got %q", summaries[0].Title)
	}
	if summaries[0].SectionCount != 1 || summaries[0].TotalDuration != 5 {
		t.Fatalf("unexpected summary counts: %#v", summaries[0])
	}
}

func TestReplaceSectionsRefreshesTimestamp(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	created := testsupport.NewScript(t, store, "Talk", script.Section{Title: "Old", Content: "old", Duration: 1})
	replacement := []script.Section{
		{Title: "New One", Content: "one", Duration: 3},
		{Title: "New Two", Content: "two", Duration: 4},
	}
	updated, err := store.ReplaceSections(ctx, created.ID, replacement)
	if err != nil {
		t.Fatalf("ReplaceSections failed: %v", err)
	}
	if len(updated.Sections) != 2 || updated.Sections[0].Title != "New One" {
		t.Fatalf("unexpected sections: %#v", updated.Sections)
	}
	if updated.TotalDuration() != 7 {
		t.Fatalf("expected total 7, got %d", updated.TotalDuration())
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updated_at to advance: before=%v after=%v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	if _, err := store.ReplaceSections(ctx, "missing", replacement); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	created := testsupport.NewScript(t, store, "Disposable")
	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, created.ID); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestResolveByPrefix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenLibrary(t, cfg)
	ctx := context.Background()

	created := testsupport.NewScript(t, store, "Prefixed")
	resolved, err := store.Resolve(ctx, created.ID[:8])
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.ID != created.ID {
		t.Fatalf("resolved wrong script: %q", resolved.ID)
	}
	if _, err := store.Resolve(ctx, "zzzz"); !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	created := testsupport.NewScript(t, store, "Persistent")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenLibrary(t, cfg)
	if _, err := reopened.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
}

func TestWriteLockIsExclusive(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := library.AcquireWriteLock(cfg)
	if err != nil {
		t.Fatalf("AcquireWriteLock failed: %v", err)
	}
	if _, err := library.AcquireWriteLock(cfg); !errors.Is(err, library.ErrLocked) {
		t.Fatalf("expected ErrLocked while held, got %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	second, err := library.AcquireWriteLock(cfg)
	if err != nil {
		t.Fatalf("expected lock after release: %v", err)
	}
	_ = second.Release()
}
