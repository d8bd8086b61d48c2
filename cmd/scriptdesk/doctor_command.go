package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scriptdesk/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the library and log directories are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)
			passed := preflight.AllPassed(results)

			if jsonOut {
				if err := writeJSON(cmd, map[string]any{"passed": passed, "checks": results}); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, colorStatus(r.Passed, colorize), r.Detail})
				}
				fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft}))
			}

			if !passed {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output check results as JSON")
	return cmd
}
