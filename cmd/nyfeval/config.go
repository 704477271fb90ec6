package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jask/nyfeval/internal/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the current configuration, including the project catalog, to the config file",
	Long: `Write the effective configuration to the config file so it can be edited.

The built-in projects are written out under [[catalog.projects]] so the
catalog can be changed without rebuilding.`,
	Args: cobra.NoArgs,
	RunE: runInitConfig,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initConfigCmd)
}

func runInitConfig(cmd *cobra.Command, _ []string) (err error) {
	var env appEnv
	env, err = loadAppEnv()
	if err != nil {
		return err
	}

	cfg := env.cfg
	if len(cfg.Catalog.Projects) == 0 {
		for _, p := range env.catalog.Projects() {
			cfg.Catalog.Projects = append(cfg.Catalog.Projects, config.ProjectConfig{
				Title:       p.Title,
				Description: p.Description,
				Request:     p.Request,
			})
		}
	}

	path := configFile
	if path == "" {
		path = os.Getenv("NYFEVAL_CONFIG")
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if err = config.Save(cfg, path); err != nil {
		return errors.Wrap(err, "failed writing config")
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return err
}
