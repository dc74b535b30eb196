package main

import (
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-ats/internal/bootstrap"
	"alfredoptarigan/resume-ats/internal/models"
)

func newRolesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the roles in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			catalog, err := bootstrap.LoadCatalog(cfg, log)
			if err != nil {
				return err
			}

			out := make(map[string]models.RoleSummary)
			for _, role := range catalog.List() {
				out[role.Key] = models.RoleSummary{Title: role.Title, Description: role.Description}
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
