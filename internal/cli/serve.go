package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/odpi/mermaidgraph/internal/server"
	"github.com/odpi/mermaidgraph/pkg/observability"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram API over HTTP",
		Long: `Serve the diagram API over HTTP.

  GET  /healthz
  GET  /api/v1/kinds
  POST /api/v1/diagrams/{kind}?direction=&anchors=&include=&exclude=&format=json|text|md|dot|svg|png|pdf
  GET  /metrics

The request body is the aggregate as JSON or YAML (Content-Type:
application/yaml). Render defaults come from the [render] section of the
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := server.Config{Server: c.Config.Server, Render: c.Config.Render}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			if !noMetrics {
				observability.Install(observability.NewPrometheusHooks(prometheus.DefaultRegisterer))
				defer observability.Reset()
				cfg.Metrics = promhttp.Handler()
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			return server.New(cfg, runner, loggerFromContext(ctx)).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable /metrics and Prometheus hooks")

	return cmd
}
