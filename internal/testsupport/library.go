package testsupport

import (
	"context"
	"testing"

	"scriptdesk/internal/config"
	"scriptdesk/internal/library"
	"scriptdesk/internal/script"
)

// MustOpenLibrary opens a library.Store for tests and registers cleanup.
func MustOpenLibrary(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewScript saves a script with the given title and sections.
func NewScript(t testing.TB, store *library.Store, title string, sections ...script.Section) *library.Script {
	t.Helper()

	sc, err := store.Create(context.Background(), &library.Script{Title: title, Sections: sections})
	if err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return sc
}
