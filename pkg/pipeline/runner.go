package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tetrado/pkg/cache"
	"github.com/matzehuels/tetrado/pkg/dssr"
	"github.com/matzehuels/tetrado/pkg/observability"
	"github.com/matzehuels/tetrado/pkg/quadruplex"
	"github.com/matzehuels/tetrado/pkg/report"
	"github.com/matzehuels/tetrado/pkg/store"
)

const keyTypeReport = "report"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its backends - it doesn't store
// results itself. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Archive store.Archive
	Logger  *log.Logger
	// TTL is how long analyses stay cached.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The archive defaults to a NullArchive; set Archive to record runs.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Archive: store.NullArchive{},
		Logger:  logger,
		TTL:     cache.TTLReport,
	}
}

// Analyze runs detection on in, consulting the cache first.
func (r *Runner) Analyze(ctx context.Context, in Input, opts Options) (*Result, error) {
	start := time.Now()
	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, in.Name, opts.Strict)

	res := &Result{
		RunID:     uuid.New(),
		Source:    in.Name,
		InputHash: cache.Hash(in.Data),
	}
	key := r.Keyer.ReportKey(res.InputHash, cache.ReportKeyOpts{Strict: opts.Strict})

	a, hit := r.cached(ctx, key, opts)
	if !hit {
		s, err := dssr.Parse(in.Name, in.Data)
		if err != nil {
			hooks.OnAnalyzeComplete(ctx, in.Name, opts.Strict, 0, 0, time.Since(start), err)
			return nil, err
		}
		a = quadruplex.Analyze(s, quadruplex.Options{Strict: opts.Strict})
		r.store(ctx, key, a)
	}
	res.Analysis = a
	res.CacheHit = hit
	res.Duration = time.Since(start)

	rec := &store.Record{
		RunID:     res.RunID,
		Source:    res.Source,
		Strict:    opts.Strict,
		InputHash: res.InputHash,
		CreatedAt: start.UTC(),
		Analysis:  a,
	}
	if err := r.Archive.Save(ctx, rec); err != nil {
		r.Logger.Warn("archive failed", "run", res.RunID, "err", err)
	}

	hooks.OnAnalyzeComplete(ctx, in.Name, opts.Strict, len(a.Tetrads), len(a.Quadruplexes), res.Duration, nil)
	r.Logger.Info("analysed",
		"source", in.Name,
		"tetrads", len(a.Tetrads),
		"quadruplexes", len(a.Quadruplexes),
		"cached", hit,
		"duration", res.Duration)
	return res, nil
}

// cached returns the stored analysis for key, if any.
func (r *Runner) cached(ctx context.Context, key string, opts Options) (*quadruplex.Analysis, bool) {
	if opts.Refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
		return nil, false
	}
	a, err := report.ReadJSON(bytes.NewReader(data))
	if err != nil {
		// Unreadable entries are recomputed and overwritten.
		observability.Cache().OnCacheMiss(ctx, keyTypeReport)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeReport)
	return a, true
}

func (r *Runner) store(ctx context.Context, key string, a *quadruplex.Analysis) {
	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, a); err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), r.TTL); err != nil {
		r.Logger.Debug("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeReport, buf.Len())
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	var err error
	if r.Cache != nil {
		err = r.Cache.Close()
	}
	if r.Archive != nil {
		if aerr := r.Archive.Close(); err == nil {
			err = aerr
		}
	}
	return err
}
