package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/altsoph/community-loglike/pkg/community"
)

// PostgresRunStore implements RunStore backed by Postgres, storing
// each dendrogram level's vertex-to-community map as jsonb (matching
// the teacher's use of jsonb columns for metadata/raw_payload in
// vectorstore.PgVectorStore).
type PostgresRunStore struct {
	db *sql.DB
}

// NewPostgresRunStore connects to Postgres using a DSN resolved from
// COMMUNITY_DATABASE_URL, falling back to DATABASE_URL, and ensures
// the schema exists.
func NewPostgresRunStore() (*PostgresRunStore, error) {
	dsn := os.Getenv("COMMUNITY_DATABASE_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return nil, errors.New("COMMUNITY_DATABASE_URL/DATABASE_URL not set")
	}
	slog.Info("store: connecting to postgres")
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return NewPostgresRunStoreFromDB(db)
}

// NewPostgresRunStoreFromDB reuses an existing *sql.DB and ensures the
// schema exists.
func NewPostgresRunStoreFromDB(db *sql.DB) (*PostgresRunStore, error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	store := &PostgresRunStore{db: db}
	if err := store.ensureTables(); err != nil {
		return nil, err
	}
	slog.Info("store: schema ready")
	return store, nil
}

func (s *PostgresRunStore) ensureTables() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS community_runs (
  run_id          uuid PRIMARY KEY,
  graph_hash      text NOT NULL,
  model           text NOT NULL,
  params          jsonb NOT NULL,
  dendrogram      jsonb NOT NULL,
  objective_value double precision NOT NULL,
  created_at      timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS community_runs_graph_idx ON community_runs (graph_hash, created_at DESC);
`
	_, err := s.db.Exec(ddl)
	return err
}

// PutRun inserts or replaces rec. A zero-value RunID is rejected —
// callers generate the ID (uuid.New()) before storing so it can be
// used as a handle immediately after a successful detection run.
func (s *PostgresRunStore) PutRun(ctx context.Context, rec RunRecord) error {
	if rec.RunID == uuid.Nil {
		return errors.New("store: run id is required")
	}
	slog.Info("store: saving run", "run_id", rec.RunID, "model", rec.Model, "graph_hash", rec.GraphHash)
	paramsBytes, err := json.Marshal(rec.Params)
	if err != nil {
		return fmt.Errorf("store: marshaling params: %w", err)
	}
	dendroBytes, err := json.Marshal(rec.Dendrogram)
	if err != nil {
		return fmt.Errorf("store: marshaling dendrogram: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO community_runs (run_id, graph_hash, model, params, dendrogram, objective_value)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (run_id) DO UPDATE SET
  graph_hash=EXCLUDED.graph_hash,
  model=EXCLUDED.model,
  params=EXCLUDED.params,
  dendrogram=EXCLUDED.dendrogram,
  objective_value=EXCLUDED.objective_value;
`, rec.RunID, rec.GraphHash, rec.Model, paramsBytes, dendroBytes, rec.ObjectiveValue)
	return err
}

// GetRun returns the stored run, or (nil, nil) if runID has no record
// — the same not-found convention as kvstore.PostgresStore.Get.
func (s *PostgresRunStore) GetRun(ctx context.Context, runID uuid.UUID) (*RunRecord, error) {
	var rec RunRecord
	var paramsBytes, dendroBytes []byte
	err := s.db.QueryRowContext(ctx, `
SELECT run_id, graph_hash, model, params, dendrogram, objective_value, created_at
FROM community_runs WHERE run_id = $1
`, runID).Scan(&rec.RunID, &rec.GraphHash, &rec.Model, &paramsBytes, &dendroBytes, &rec.ObjectiveValue, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Info("store: run not found", "run_id", runID)
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(paramsBytes, &rec.Params); err != nil {
		return nil, fmt.Errorf("store: unmarshaling params: %w", err)
	}
	if err := json.Unmarshal(dendroBytes, &rec.Dendrogram); err != nil {
		return nil, fmt.Errorf("store: unmarshaling dendrogram: %w", err)
	}
	return &rec, nil
}

// ListRunsForGraph returns the most recent runs for graphHash, newest
// first, capped at limit (default 100).
func (s *PostgresRunStore) ListRunsForGraph(ctx context.Context, graphHash string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT run_id, graph_hash, model, params, dendrogram, objective_value, created_at
FROM community_runs WHERE graph_hash = $1 ORDER BY created_at DESC LIMIT $2
`, graphHash, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var paramsBytes, dendroBytes []byte
		if err := rows.Scan(&rec.RunID, &rec.GraphHash, &rec.Model, &paramsBytes, &dendroBytes, &rec.ObjectiveValue, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(paramsBytes, &rec.Params); err != nil {
			return nil, fmt.Errorf("store: unmarshaling params: %w", err)
		}
		if err := json.Unmarshal(dendroBytes, &rec.Dendrogram); err != nil {
			return nil, fmt.Errorf("store: unmarshaling dendrogram: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close closes the underlying database connection.
func (s *PostgresRunStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ RunStore = (*PostgresRunStore)(nil)
