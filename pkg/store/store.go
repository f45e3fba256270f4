// Package store archives finished analyses.
//
// Every pipeline run can be recorded with its run ID, source name, input
// hash and full result, so that a later request for the same run ID can be
// answered without the input document. [NullArchive] discards records;
// [MongoArchive] persists them to a MongoDB collection.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

// Record is one archived analysis.
type Record struct {
	RunID     uuid.UUID            `json:"run_id"`
	Source    string               `json:"source"`
	Strict    bool                 `json:"strict"`
	InputHash string               `json:"input_hash"`
	CreatedAt time.Time            `json:"created_at"`
	Analysis  *quadruplex.Analysis `json:"analysis"`
}

// Archive stores and retrieves records.
type Archive interface {
	Save(ctx context.Context, rec *Record) error
	// Get returns the record for id. The bool is false when no record exists.
	Get(ctx context.Context, id uuid.UUID) (*Record, bool, error)
	Close() error
}

// NullArchive is an Archive that keeps nothing.
type NullArchive struct{}

func (NullArchive) Save(context.Context, *Record) error { return nil }

func (NullArchive) Get(context.Context, uuid.UUID) (*Record, bool, error) {
	return nil, false, nil
}

func (NullArchive) Close() error { return nil }
