package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"scriptdesk/internal/fileutil"
	"scriptdesk/internal/library"
	"scriptdesk/internal/script"
	"scriptdesk/internal/textutil"
)

func newScriptsCommand(ctx *commandContext) *cobra.Command {
	scriptsCmd := &cobra.Command{
		Use:     "scripts",
		Aliases: []string{"library"},
		Short:   "Manage saved scripts",
	}

	scriptsCmd.AddCommand(newScriptsListCommand(ctx))
	scriptsCmd.AddCommand(newScriptsShowCommand(ctx))
	scriptsCmd.AddCommand(newScriptsRenameCommand(ctx))
	scriptsCmd.AddCommand(newScriptsDeleteCommand(ctx))
	scriptsCmd.AddCommand(newScriptsExportCommand(ctx))

	return scriptsCmd
}

func newScriptsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved scripts, most recently updated first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				summaries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					if summaries == nil {
						summaries = []library.Summary{}
					}
					return writeJSON(cmd, summaries)
				}

				out := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintln(out, "No scripts saved yet. Import one with: scriptdesk import <file>")
					return nil
				}
				rows := make([][]string, 0, len(summaries))
				for _, s := range summaries {
					rows = append(rows, []string{
						shortID(s.ID),
						s.Title,
						strconv.Itoa(s.SectionCount),
						formatDuration(s.TotalDuration),
						formatDisplayTime(s.UpdatedAt),
					})
				}
				headers := []string{"ID", "Title", "Sections", "Duration", "Updated"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output scripts as JSON")
	return cmd
}

func newScriptsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved script with its sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				sc, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, sc)
				}

				out := cmd.OutOrStdout()
				source := sc.SourcePath
				if source == "" {
					source = "-"
				}
				fmt.Fprintf(out, "ID: %s\n", sc.ID)
				fmt.Fprintf(out, "Updated: %s\n", formatDisplayTime(sc.UpdatedAt))
				printScript(out, toConversionResult(sc), source, shouldColorize(out))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the script as JSON")
	return cmd
}

func newScriptsRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Change the title of a saved script",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[1])
			if title == "" {
				return errors.New("title must not be empty")
			}
			return ctx.withLibrary(func(store *library.Store) error {
				sc, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				renamed, err := store.Rename(cmd.Context(), sc.ID, title)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %q\n", shortID(renamed.ID), renamed.Title)
				return nil
			})
		},
	}
}

func newScriptsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a script from the library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				sc, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := store.Delete(cmd.Context(), sc.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q (%s)\n", sc.Title, shortID(sc.ID))
				return nil
			})
		},
	}
}

func newScriptsExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a saved script as Markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(func(store *library.Store) error {
				sc, err := store.Resolve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				doc := renderMarkdown(toConversionResult(sc))

				target := strings.TrimSpace(outPath)
				if target == "" {
					_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
					return err
				}
				target, err = exportTarget(target, sc.Title)
				if err != nil {
					return err
				}
				if err := fileutil.WriteFileAtomic(target, []byte(doc), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", target, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %q to %s\n", sc.Title, target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination file or directory (default stdout)")
	return cmd
}

// exportTarget maps a directory to a file named after the title.
func exportTarget(path, title string) (string, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(path, textutil.SanitizeFileName(title)+".md"), nil
	case err == nil, errors.Is(err, os.ErrNotExist):
		return path, nil
	default:
		return "", fmt.Errorf("check export path: %w", err)
	}
}

func toConversionResult(sc *library.Script) script.ConversionResult {
	return script.ConversionResult{
		Title:    sc.Title,
		Author:   sc.Author,
		Sections: sc.Sections,
	}
}
