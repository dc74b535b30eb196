package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-ats/internal/bootstrap"
	"alfredoptarigan/resume-ats/internal/models"
	"alfredoptarigan/resume-ats/internal/services"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var roleKey, roleDescription string

	cmd := &cobra.Command{
		Use:   "score <resume.pdf>",
		Short: "Score a resume PDF against a catalog role or a freeform description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Sync()

			pipeline, err := bootstrap.NewPipeline(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer pipeline.Close()

			role, err := services.ResolveRole(pipeline.Catalog, roleKey, roleDescription)
			if err != nil {
				return err
			}

			report, err := pipeline.Scorer.AnalyzeFile(cmd.Context(), args[0], role)
			if err != nil {
				if errors.Is(err, services.ErrNoTextExtracted) {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				return fmt.Errorf("failed to score resume: %w", err)
			}

			return writeJSON(cmd.OutOrStdout(), models.AnalyzeResponse{
				Filename:    filepath.Base(args[0]),
				Role:        role.Title,
				Scores:      report,
				Suggestions: services.GenerateSuggestions(report),
			})
		},
	}

	cmd.Flags().StringVar(&roleKey, "role", "", "catalog role key")
	cmd.Flags().StringVar(&roleDescription, "description", "", "freeform role description")
	cmd.MarkFlagsOneRequired("role", "description")

	return cmd
}
