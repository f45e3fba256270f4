package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tetrado/internal/watch"
	"github.com/matzehuels/tetrado/pkg/pipeline"
)

type watchOpts struct {
	strict  bool
	initial bool
	noCache bool
}

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var opts watchOpts

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-analyse DSSR documents as they change",
		Long: `Watch a directory of DSSR JSON documents. Each created or modified
document is analysed and its text report written next to it as
<name>.tetrads.txt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				opts.strict = c.Config.Analysis.Strict
			}
			return c.runWatch(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "only cWH/cHW pairs form tetrads")
	cmd.Flags().BoolVar(&opts.initial, "initial", true, "analyse documents already in the directory")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the analysis cache")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, dir string, opts watchOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	w, err := watch.New(dir, runner, pipeline.Options{Strict: opts.strict}, watch.Config{
		Debounce:   c.Config.Watch.Debounce.Duration,
		Extensions: c.Config.Watch.Extensions,
		Initial:    opts.initial,
	}, c.Logger)
	if err != nil {
		return err
	}

	go func() {
		for ev := range w.Events() {
			if ev.Err != nil {
				printError("%s: %v", ev.Path, ev.Err)
				continue
			}
			printStats(ev.ReportPath, len(ev.Result.Analysis.Tetrads), len(ev.Result.Analysis.Quadruplexes), ev.Result.CacheHit)
		}
	}()

	printInfo("Watching %s", StyleHighlight.Render(dir))
	return w.Run(ctx)
}
