package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"scriptdesk/internal/config"
	"scriptdesk/internal/ingest"
	"scriptdesk/internal/library"
	"scriptdesk/internal/logging"
)

type importOutcome string

const (
	outcomeCreated  importOutcome = "created"
	outcomeReplaced importOutcome = "replaced"
	outcomeSkipped  importOutcome = "skipped"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var flags conversionFlags
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Convert documents and save them to the script library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			lock, err := library.AcquireWriteLock(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logging.WarnWithContext(logger, "failed to release library lock", "lock_release_failed",
						logging.String("lock", lock.Path()), logging.Error(err))
				}
			}()

			return ctx.withLibrary(func(store *library.Store) error {
				return importFiles(cmd.Context(), cmd.OutOrStdout(), cfg, store, logger, args, flags.request(), replace)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace sections of scripts already imported from the same file")
	return cmd
}

func importFiles(ctx context.Context, out io.Writer, cfg *config.Config, store *library.Store, logger *slog.Logger, paths []string, req ingest.Request, replace bool) error {
	svc := ingest.NewService(cfg, logger)
	logger = logging.NewComponentLogger(logger, "import")

	var failed int
	for _, path := range paths {
		sc, outcome, err := importFile(ctx, svc, store, path, req, replace)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			failed++
			logger.Error("import failed", logging.String(logging.FieldSource, path), logging.Error(err))
			fmt.Fprintf(out, "Failed %s: %v\n", path, err)
			continue
		}
		switch outcome {
		case outcomeSkipped:
			fmt.Fprintf(out, "Skipped %s: already imported as %s (use --replace to update)\n", path, shortID(sc.ID))
		default:
			verb := "Imported"
			if outcome == outcomeReplaced {
				verb = "Updated"
			}
			fmt.Fprintf(out, "%s %q (%s): %d sections, %s\n", verb, sc.Title, shortID(sc.ID), len(sc.Sections), formatDuration(sc.TotalDuration()))
			logging.WithContext(logging.WithScriptID(ctx, sc.ID), logger).Info("script saved",
				logging.String(logging.FieldSource, sc.SourcePath),
				logging.String("outcome", string(outcome)),
			)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d imports failed", failed, len(paths))
	}
	return nil
}

func importFile(ctx context.Context, svc *ingest.Service, store *library.Store, path string, req ingest.Request, replace bool) (*library.Script, importOutcome, error) {
	result, err := svc.Convert(ctx, path, req)
	if err != nil {
		return nil, "", err
	}

	existing, err := store.FindBySource(ctx, result.Source)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		if !replace {
			return existing, outcomeSkipped, nil
		}
		sc, err := store.ReplaceSections(ctx, existing.ID, result.Script.Sections)
		if err != nil {
			return nil, "", err
		}
		if req.Title != "" && sc.Title != result.Script.Title {
			if sc, err = store.Rename(ctx, sc.ID, result.Script.Title); err != nil {
				return nil, "", err
			}
		}
		return sc, outcomeReplaced, nil
	}

	sc, err := store.Create(ctx, library.NewScript(result.Script, result.Source, string(result.Format)))
	if err != nil {
		return nil, "", err
	}
	return sc, outcomeCreated, nil
}
