package estimator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/store"
)

// Store persists the current input snapshot.
type Store interface {
	Load(ctx context.Context) (store.Record, error)
	Save(ctx context.Context, rec store.Record) error
}

// Snapshot is one input state together with the breakdown derived from it.
type Snapshot struct {
	ID        string
	Input     costmodel.Input
	Breakdown costmodel.Breakdown
	UpdatedAt time.Time
}

// Observer is notified after every successful recompute.
type Observer interface {
	Recomputed(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// Recomputed calls f(s).
func (f ObserverFunc) Recomputed(s Snapshot) { f(s) }

// Estimator holds the current input state and recomputes the breakdown on
// every input change.
type Estimator struct {
	store     Store
	observers []Observer
	now       func() time.Time

	mu      sync.RWMutex
	current Snapshot
	seq     uint64

	// notifyMu orders observer calls; a snapshot older than notified is
	// never published.
	notifyMu sync.Mutex
	notified uint64
}

// New returns an Estimator that starts at the default scenario until Load is called.
func New(s Store, observers ...Observer) *Estimator {
	e := &Estimator{
		store:     s,
		observers: observers,
		now:       time.Now,
	}
	e.current = e.snapshot(uuid.NewString(), costmodel.Defaults())
	return e
}

// Load restores the saved input state. When nothing is saved yet the
// default scenario is kept and persisted.
func (e *Estimator) Load(ctx context.Context) (Snapshot, error) {
	rec, err := e.store.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return e.Reset(ctx)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load input state: %w", err)
	}

	s := Snapshot{
		ID:        rec.ID,
		Input:     rec.Input,
		Breakdown: costmodel.Compute(rec.Input),
		UpdatedAt: rec.UpdatedAt,
	}

	e.mu.Lock()
	e.current = s
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	e.notify(seq, s)
	return s, nil
}

// Update handles an input-changed event: the breakdown is recomputed from
// in, persisted and published. Inputs whose breakdown overflows are rejected.
// On error the current snapshot is unchanged.
func (e *Estimator) Update(ctx context.Context, in costmodel.Input) (Snapshot, error) {
	if err := costmodel.Validate(in); err != nil {
		return Snapshot{}, err
	}
	if err := costmodel.ValidateBreakdown(costmodel.Compute(in)); err != nil {
		return Snapshot{}, err
	}

	e.mu.Lock()
	s := e.snapshot(uuid.NewString(), in)
	if err := e.store.Save(ctx, store.Record{ID: s.ID, Input: s.Input, UpdatedAt: s.UpdatedAt}); err != nil {
		e.mu.Unlock()
		return Snapshot{}, fmt.Errorf("save input state: %w", err)
	}
	e.current = s
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	e.notify(seq, s)
	return s, nil
}

// Reset restores the default scenario.
func (e *Estimator) Reset(ctx context.Context) (Snapshot, error) {
	return e.Update(ctx, costmodel.Defaults())
}

// Current returns the latest snapshot.
func (e *Estimator) Current() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}

func (e *Estimator) snapshot(id string, in costmodel.Input) Snapshot {
	return Snapshot{
		ID:        id,
		Input:     in,
		Breakdown: costmodel.Compute(in),
		UpdatedAt: e.now().UTC(),
	}
}

func (e *Estimator) notify(seq uint64, s Snapshot) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()
	if seq <= e.notified {
		return
	}
	e.notified = seq

	for _, o := range e.observers {
		o.Recomputed(s)
	}
}
