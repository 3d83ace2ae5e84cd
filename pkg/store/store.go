// Package store persists completed community-detection runs so a
// caller can look up a past best_partition/generate_dendrogram result
// instead of re-optimizing the same graph under the same model.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/altsoph/community-loglike/pkg/community"
)

// ErrRunNotFound is returned by the higher-level GetRunOrNotFound
// helper when a run ID has no record.
var ErrRunNotFound = errors.New("store: run not found")

// RunRecord is one completed detection run: which graph (identified by
// a caller-supplied content hash — hashing the input graph is the
// caller's concern, not this package's), which model and parameters it
// ran under, the resulting dendrogram, and the model's final objective
// value at the bottom level.
type RunRecord struct {
	RunID          uuid.UUID
	GraphHash      string
	Model          string
	Params         map[string]float64
	Dendrogram     community.Dendrogram
	ObjectiveValue float64
	CreatedAt      time.Time
}

// RunStore persists and retrieves RunRecords.
type RunStore interface {
	PutRun(ctx context.Context, rec RunRecord) error
	GetRun(ctx context.Context, runID uuid.UUID) (*RunRecord, error)
	ListRunsForGraph(ctx context.Context, graphHash string, limit int) ([]RunRecord, error)
	Close() error
}

// GetRunOrNotFound wraps RunStore.GetRun's "nil, nil means missing"
// result (the same asymmetry the teacher's kvstore.Store.Get and
// vectorstore use) into an explicit ErrRunNotFound for callers that
// want to treat a missing run as an error rather than an optional value.
func GetRunOrNotFound(ctx context.Context, s RunStore, runID uuid.UUID) (RunRecord, error) {
	rec, err := s.GetRun(ctx, runID)
	if err != nil {
		return RunRecord{}, err
	}
	if rec == nil {
		return RunRecord{}, ErrRunNotFound
	}
	return *rec, nil
}
