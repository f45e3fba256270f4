package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tetrado/pkg/dssr"
	"github.com/matzehuels/tetrado/pkg/errors"
	"github.com/matzehuels/tetrado/pkg/pipeline"
	"github.com/matzehuels/tetrado/pkg/report"
)

type analyzeOpts struct {
	json    bool
	strict  bool
	format  string
	output  string
	noCache bool
	refresh bool
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <input|glob>...",
		Short: "Find tetrads and quadruplexes in structures",
		Long: `Analyze one or more structures and print a report per input.

Inputs are PDB/mmCIF files annotated with x3dna-dssr, or DSSR JSON documents
when --json is given. Arguments may be doublestar globs ("data/**/*.json").
With several inputs each report is preceded by a "# <path>" line.`,
		Example: `  tetrado analyze --json 1jpq.json
  tetrado analyze --strict 2hy9.pdb
  tetrado analyze --json -f svg -o 1jpq.svg 1jpq.json
  tetrado analyze --json 'structures/**/*.json'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				opts.strict = c.Config.Analysis.Strict
			}
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Analysis.Format
			}
			return c.runAnalyze(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "inputs are DSSR JSON documents")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "only cWH/cHW pairs form tetrads")
	cmd.Flags().StringVarP(&opts.format, "format", "f", report.FormatText, fmt.Sprintf("report format %v", report.Formats()))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the analysis cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached analyses")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, args []string, opts analyzeOpts) error {
	if err := report.Validate(opts.format); err != nil {
		return err
	}
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	out := c.Out
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", opts.output)
		}
		defer f.Close()
		out = f
	}
	bw := bufio.NewWriter(out)

	prog := newProgress(c.Logger)
	annotator := dssr.NewRunner(c.Config.DSSR.Binary, c.Config.DSSR.Args...)
	for _, path := range paths {
		in, err := c.loadInput(ctx, path, opts.json, annotator)
		if err != nil {
			return err
		}
		res, err := runner.Analyze(ctx, in, pipeline.Options{Strict: opts.strict, Refresh: opts.refresh})
		if err != nil {
			return err
		}

		if len(paths) > 1 {
			fmt.Fprintf(bw, "# %s\n", path)
		}
		if err := report.Write(opts.format, bw, res.Analysis); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	if len(paths) > 1 {
		prog.done(fmt.Sprintf("Analysed %d inputs", len(paths)))
	}
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// loadInput reads a DSSR document, annotating structure files first.
func (c *CLI) loadInput(ctx context.Context, path string, isJSON bool, annotator *dssr.Runner) (pipeline.Input, error) {
	if isJSON {
		return pipeline.LoadInput(ctx, path, true, nil)
	}
	spin := newSpinnerWithContext(ctx, "Annotating "+path)
	spin.Start()
	in, err := pipeline.LoadInput(ctx, path, false, annotator)
	if err != nil {
		spin.StopWithError("Annotation failed: " + path)
		return in, err
	}
	spin.Stop()
	return in, nil
}

// expandInputs resolves glob arguments. Plain paths are kept as given so
// that missing files surface as FILE_NOT_FOUND from the loader.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad pattern %q", arg)
		}
		if len(matches) == 0 {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no files match %s", arg)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
