package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"scriptdesk/internal/config"
	"scriptdesk/internal/library"
)

// CheckDirectoryAccess passes when path is a directory the current user can
// list, read and write.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return failed(name, path, "does not exist")
	case err != nil:
		return failed(name, path, fmt.Sprintf("stat: %v", err))
	case !info.IsDir():
		return failed(name, path, "is not a directory")
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return failed(name, path, fmt.Sprintf("insufficient permissions: %v", err))
	}
	return Result{Name: name, Passed: true, Detail: path + " (read/write ok)"}
}

func failed(name, path, reason string) Result {
	return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", path, reason)}
}

// CheckLibrary opens the script database and counts its scripts. A missing
// database is created, matching what import would do.
func CheckLibrary(ctx context.Context, cfg *config.Config) Result {
	const name = "Script library"

	store, err := library.Open(cfg)
	if err != nil {
		if errors.Is(err, library.ErrSchemaMismatch) {
			return Result{Name: name, Detail: err.Error()}
		}
		return failed(name, cfg.LibraryPath(), err.Error())
	}
	defer store.Close()

	scripts, err := store.List(ctx)
	if err != nil {
		return failed(name, store.Path(), err.Error())
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d scripts)", store.Path(), len(scripts))}
}
