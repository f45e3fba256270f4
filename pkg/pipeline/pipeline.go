// Package pipeline provides the analysis pipeline shared by the CLI, the
// HTTP server and watch mode.
//
// The pipeline takes a DSSR document, looks for a cached analysis of the
// same bytes, and otherwise parses the document, runs the detector and
// stores the result. Every run gets a fresh run ID and is recorded in the
// configured archive. By centralizing this logic, every entry point reports
// the same thing for the same input.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	in, err := pipeline.LoadInput(ctx, "1jpq.json", true, nil)
//	if err != nil {
//	    return err
//	}
//	res, err := runner.Analyze(ctx, in, pipeline.Options{Strict: true})
//	if err != nil {
//	    return err
//	}
//	report.WriteText(os.Stdout, res.Analysis)
package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tetrado/pkg/dssr"
	"github.com/matzehuels/tetrado/pkg/errors"
	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

// Input is one DSSR JSON document to analyse.
type Input struct {
	// Name identifies the document in logs, errors and archive records.
	Name string
	Data []byte
}

// Options control a single run.
type Options struct {
	// Strict restricts tetrads to cWH/cHW pairing.
	Strict bool
	// Refresh skips the cache lookup. The fresh result is still stored.
	Refresh bool
}

// Result is the outcome of one run.
type Result struct {
	RunID     uuid.UUID            `json:"run_id"`
	Source    string               `json:"source"`
	InputHash string               `json:"input_hash"`
	Analysis  *quadruplex.Analysis `json:"analysis"`
	CacheHit  bool                 `json:"cache_hit"`
	Duration  time.Duration        `json:"duration_ns"`
}

// LoadInput reads the document for path. With isJSON set the file already
// is DSSR output; otherwise it is a structure file handed to annotator, or
// to a default runner when annotator is nil.
func LoadInput(ctx context.Context, path string, isJSON bool, annotator *dssr.Runner) (Input, error) {
	if isJSON {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return Input{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file %s", path)
		}
		if err != nil {
			return Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
		}
		return Input{Name: path, Data: data}, nil
	}

	if annotator == nil {
		annotator = dssr.NewRunner("")
	}
	data, err := annotator.Run(ctx, path)
	if err != nil {
		return Input{}, err
	}
	return Input{Name: path, Data: data}, nil
}
