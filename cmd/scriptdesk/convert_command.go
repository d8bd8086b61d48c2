package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptdesk/internal/ingest"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags conversionFlags
	var jsonOut bool
	var markdown bool

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a document into script sections without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut && markdown {
				return fmt.Errorf("--json and --markdown are mutually exclusive")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			result, err := ingest.NewService(cfg, logger).Convert(cmd.Context(), args[0], flags.request())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOut:
				return writeJSON(cmd, result)
			case markdown:
				_, err := fmt.Fprint(out, renderMarkdown(result.Script))
				return err
			}

			printScript(out, result.Script, fmt.Sprintf("%s (%s)", result.Source, result.Format), shouldColorize(out))
			if result.Truncated {
				fmt.Fprintf(out, "Note: only the first %d of %d pages were converted\n", cfg.PDF.MaxPages, result.Pages)
			}
			if result.Fonts != nil {
				printFontStats(out, *result.Fonts)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the conversion as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Output the script as Markdown")
	return cmd
}
