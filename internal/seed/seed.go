package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/store"
)

// Config contains the values required by startup seed.
type Config struct {
	Scenario costmodel.Input
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureInputState(ctx, tx, cfg.Scenario, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureInputState(ctx context.Context, tx *sql.Tx, scenario costmodel.Input, stats *Stats) error {
	inserted, err := store.New(tx).Ensure(ctx, store.Record{
		ID:        uuid.NewString(),
		Input:     scenario,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("seed input state: %w", err)
	}
	if inserted {
		stats.Inserts++
	}
	return nil
}
