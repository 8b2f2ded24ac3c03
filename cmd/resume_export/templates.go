package main

import (
	"encoding/json"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List export templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profiles []styles.Profile
			for _, id := range styles.Templates() {
				profiles = append(profiles, styles.Resolve(id))
			}

			if asJSON {
				ids := make([]string, len(profiles))
				for i, p := range profiles {
					ids[i] = p.ID.String()
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ids)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(profiles)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print template IDs as JSON")

	return cmd
}
