package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tetrado/pkg/cache"
	"github.com/matzehuels/tetrado/pkg/dssr"
	"github.com/matzehuels/tetrado/pkg/errors"
	"github.com/matzehuels/tetrado/pkg/report"
	"github.com/matzehuels/tetrado/pkg/store"
)

const fixture = "testdata/two_tetrads.json"

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func loadFixture(t *testing.T) Input {
	t.Helper()
	in, err := LoadInput(context.Background(), fixture, true, nil)
	if err != nil {
		t.Fatalf("LoadInput: %v", err)
	}
	return in
}

func newRunner(t *testing.T) (*Runner, *store.MemoryArchive) {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, quietLogger())
	archive := store.NewMemoryArchive(0)
	r.Archive = archive
	t.Cleanup(func() { r.Close() })
	return r, archive
}

func TestAnalyze(t *testing.T) {
	r, archive := newRunner(t)
	res, err := r.Analyze(context.Background(), loadFixture(t), Options{Strict: true})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.CacheHit {
		t.Error("first run should miss the cache")
	}
	if res.Source != fixture {
		t.Errorf("Source = %q", res.Source)
	}

	var buf bytes.Buffer
	if err := report.WriteText(&buf, res.Analysis); err != nil {
		t.Fatal(err)
	}
	want := "2 tetrads\n" +
		"stem #1\n" +
		"A.DG1 A.DG4 A.DG7 A.DG10 +O\n" +
		"A.DG2 A.DG5 A.DG8 A.DG11 +O\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("report =\n%q\nwant\n%q", buf.String(), want)
	}

	rec, ok, err := archive.Get(context.Background(), res.RunID)
	if err != nil || !ok {
		t.Fatalf("run not archived: %v %v", ok, err)
	}
	if rec.InputHash != res.InputHash || !rec.Strict {
		t.Errorf("record = %+v", rec)
	}
}

func TestAnalyzeCaches(t *testing.T) {
	r, archive := newRunner(t)
	ctx := context.Background()
	in := loadFixture(t)

	first, err := r.Analyze(ctx, in, Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Analyze(ctx, Input{Name: "copy.json", Data: in.Data}, Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("identical bytes should hit the cache")
	}
	if first.RunID == second.RunID {
		t.Error("each run needs its own ID")
	}
	if len(second.Analysis.Tetrads) != 2 {
		t.Errorf("cached tetrads = %v", second.Analysis.Tetrads)
	}

	relaxed, err := r.Analyze(ctx, in, Options{Strict: false})
	if err != nil {
		t.Fatal(err)
	}
	if relaxed.CacheHit {
		t.Error("strictness is part of the key")
	}

	refreshed, err := r.Analyze(ctx, in, Options{Strict: true, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheHit {
		t.Error("refresh should bypass the cache")
	}
	if archive.Len() != 4 {
		t.Errorf("archived %d runs, want 4", archive.Len())
	}
}

func TestAnalyzeCorruptCacheEntry(t *testing.T) {
	r, _ := newRunner(t)
	ctx := context.Background()
	in := loadFixture(t)

	key := r.Keyer.ReportKey(cache.Hash(in.Data), cache.ReportKeyOpts{Strict: true})
	if err := r.Cache.Set(ctx, key, []byte("not json"), 0); err != nil {
		t.Fatal(err)
	}
	res, err := r.Analyze(ctx, in, Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit || len(res.Analysis.Tetrads) != 2 {
		t.Errorf("corrupt entry should be recomputed: hit=%v tetrads=%v", res.CacheHit, res.Analysis.Tetrads)
	}
}

func TestAnalyzeNoPairs(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Analyze(context.Background(), Input{Name: "empty.json", Data: []byte(`{"nts": []}`)}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Analysis.HasPairs || !res.Analysis.Empty() {
		t.Errorf("analysis = %+v", res.Analysis)
	}
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Analyze(context.Background(), Input{Name: "bad.json", Data: []byte("{")}, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidJSON) {
		t.Errorf("error = %v, want INVALID_JSON", err)
	}
}

func TestLoadInput(t *testing.T) {
	ctx := context.Background()

	_, err := LoadInput(ctx, filepath.Join(t.TempDir(), "missing.json"), true, nil)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing JSON: %v", err)
	}

	pdb := filepath.Join(t.TempDir(), "1abc.pdb")
	if err := os.WriteFile(pdb, []byte("ATOM"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadInput(ctx, pdb, false, dssr.NewRunner("tetrado-no-such-annotator"))
	if !errors.Is(err, errors.ErrCodeAnnotatorFailed) {
		t.Errorf("missing annotator: %v", err)
	}
}
