package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheunsBarnardt/AI-Prompt-Generator/internal/api"
	"github.com/TheunsBarnardt/AI-Prompt-Generator/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API used by the design-tool plugin",
		Long: `Run the HTTP API used by the design-tool plugin.

The server exposes POST /api/v1/prompts for prompt generation and
GET /healthz for health checks. Configuration can come from a TOML file
(--config) with flags taking precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := api.DefaultConfig()
			if configPath != "" {
				loaded, err := api.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			backend, err := api.NewCache(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}

			runner := pipeline.NewRunner(backend, nil, c.Logger)
			defer runner.Close()

			server := api.NewServer(runner, c.Logger)
			printInfo("Serving on %s (cache: %s)", cfg.Addr, cacheBackendName(cfg))
			return server.ListenAndServe(cmd.Context(), cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")

	return cmd
}

func cacheBackendName(cfg api.Config) string {
	if cfg.CacheBackend == "" {
		return "memory"
	}
	return cfg.CacheBackend
}
