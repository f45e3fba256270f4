package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/tetrado/pkg/errors"
	"github.com/matzehuels/tetrado/pkg/pipeline"
	"github.com/matzehuels/tetrado/pkg/report"
)

// Response headers carrying run metadata next to the report body.
const (
	HeaderRunID = "X-Tetrado-Run-Id"
	HeaderCache = "X-Tetrado-Cache"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	strict := s.strict
	if v := q.Get("strict"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "strict must be a boolean, got %q", v))
			return
		}
		strict = b
	}
	refresh, _ := strconv.ParseBool(q.Get("refresh"))

	format := q.Get("format")
	if format == "" {
		format = report.FormatText
	}
	if err := report.Validate(format); err != nil {
		writeError(w, err)
		return
	}

	name := q.Get("name")
	if name == "" {
		name = "request"
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.runner.Analyze(r.Context(), pipeline.Input{Name: name, Data: data}, pipeline.Options{
		Strict:  strict,
		Refresh: refresh,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	// Render before writing headers so failures still produce an error status.
	var body bytes.Buffer
	if err := report.Write(format, &body, res.Analysis); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render %s report", format))
		return
	}

	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set(HeaderRunID, res.RunID.String())
	if res.CacheHit {
		w.Header().Set(HeaderCache, "hit")
	} else {
		w.Header().Set(HeaderCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = body.WriteTo(w)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid run id %q", raw))
		return
	}

	rec, ok, err := s.runner.Archive.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "run %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
