package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/config"
	applog "alfredoptarigan/resume-ats/internal/logger"
)

type rootOptions struct {
	rolesPath string
	debug     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "ats-cli",
		Short:        "Score resumes against job roles from the command line",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.rolesPath, "roles", "", "path to roles JSON (overrides ROLES_PATH)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newRolesCmd(opts))
	cmd.AddCommand(newScoreCmd(opts))

	return cmd
}

func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if o.rolesPath != "" {
		cfg.Roles.Source = config.RolesSourceFile
		cfg.Roles.Path = o.rolesPath
	}

	// stdout is reserved for JSON output.
	log, err := applog.New(cfg.Log.JSON, cfg.Log.Debug || o.debug, "stderr")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
