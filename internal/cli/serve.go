package cli

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tetrado/internal/server"
	"github.com/matzehuels/tetrado/pkg/observability"
	"github.com/matzehuels/tetrado/pkg/store"
)

// memoryArchiveLimit bounds the runs kept by serve without a MongoDB archive.
const memoryArchiveLimit = 1000

type serveOpts struct {
	addr    string
	strict  bool
	noCache bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Long: `Serve the analysis API.

  POST /v1/analyze?strict=&format=   DSSR JSON body, report response
  GET  /v1/runs/{id}                 archived run
  GET  /healthz                      build info
  GET  /metrics                      Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				opts.addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("strict") {
				opts.strict = c.Config.Analysis.Strict
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "default to strict mode when requests do not say")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the analysis cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	if _, ok := runner.Archive.(store.NullArchive); ok {
		runner.Archive = store.NewMemoryArchive(memoryArchiveLimit)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)
	observability.SetAnalysisHooks(metrics)
	observability.SetCacheHooks(metrics)
	observability.SetHTTPHooks(metrics)

	srv := server.New(server.Options{
		Runner:       runner,
		Metrics:      metrics.Handler(),
		Logger:       c.Logger,
		Strict:       opts.strict,
		MaxBodyBytes: c.Config.Server.MaxBodyBytes,
	})

	printSuccess("Serving on %s", StyleHighlight.Render(opts.addr))
	printKeyValue("strict", boolWord(opts.strict))
	printKeyValue("archive", archiveName(runner.Archive))
	return srv.ListenAndServe(ctx, opts.addr)
}

func archiveName(a store.Archive) string {
	switch a.(type) {
	case *store.MongoArchive:
		return "mongodb"
	case *store.MemoryArchive:
		return "memory"
	}
	return "none"
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
