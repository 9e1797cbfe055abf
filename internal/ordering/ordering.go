// Package ordering keeps a manual, gap-tolerant display order over a collection of records.
//
// Records created before manual ordering existed carry no rank and sort after every ranked
// record. The Manager never locks anything itself: callers run it against a Store bound to a
// transaction that serializes rank changes on the collection.
package ordering

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned by a Store when the target record does not exist.
var ErrNotFound = errors.New("record not found")

// Item is a record as seen by the ordering logic.
type Item struct {
	ID   int64
	Rank *int // nil for records that were never ranked
}

// Move reports what Promote or Demote did.
type Move int

const (
	Moved Move = iota
	AlreadyFirst
	AlreadyLast
)

func (m Move) String() string {
	switch m {
	case Moved:
		return "moved"
	case AlreadyFirst:
		return "already_first"
	case AlreadyLast:
		return "already_last"
	default:
		return "unknown"
	}
}

// Store is the persistence the Manager works on.
type Store interface {
	MaxRank(ctx context.Context) (int, bool, error)
	Rank(ctx context.Context, id int64) (*int, error)
	SetRank(ctx context.Context, id int64, rank int) error
	Before(ctx context.Context, rank int) (Item, bool, error)
	After(ctx context.Context, rank int) (Item, bool, error)
	SwapRanks(ctx context.Context, a, b Item) error
	Unranked(ctx context.Context) ([]int64, error)
}

// Manager implements rank allocation, neighbour swaps and backfill.
type Manager struct {
	store Store
}

// NewManager creates a Manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// NextRank returns the rank a new record should get: one past the current maximum, or 1.
//
// Two concurrent callers may compute the same value unless the store is bound to a
// serializing transaction.
func (m *Manager) NextRank(ctx context.Context) (int, error) {
	top, ok, err := m.store.MaxRank(ctx)
	if err != nil {
		return 0, fmt.Errorf("get max rank: %w", err)
	}

	if !ok {
		return 1, nil
	}

	return top + 1, nil
}

// Promote swaps the record with its nearest ranked predecessor.
func (m *Manager) Promote(ctx context.Context, id int64) (Move, error) {
	return m.move(ctx, id, m.store.Before, AlreadyFirst)
}

// Demote swaps the record with its nearest ranked successor.
func (m *Manager) Demote(ctx context.Context, id int64) (Move, error) {
	return m.move(ctx, id, m.store.After, AlreadyLast)
}

func (m *Manager) move(
	ctx context.Context,
	id int64,
	neighbour func(context.Context, int) (Item, bool, error),
	edge Move,
) (Move, error) {
	rank, err := m.ensureRank(ctx, id)
	if err != nil {
		return 0, err
	}

	other, found, err := neighbour(ctx, rank)
	if err != nil {
		return 0, fmt.Errorf("find neighbour of %d: %w", id, err)
	}

	if !found {
		return edge, nil
	}

	target := Item{ID: id, Rank: &rank}
	if err := m.store.SwapRanks(ctx, target, other); err != nil {
		return 0, fmt.Errorf("swap ranks %d and %d: %w", id, other.ID, err)
	}

	return Moved, nil
}

// ensureRank returns the record's rank, giving an unranked record the next free one first.
func (m *Manager) ensureRank(ctx context.Context, id int64) (int, error) {
	rank, err := m.store.Rank(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get rank of %d: %w", id, err)
	}

	if rank != nil {
		return *rank, nil
	}

	next, err := m.NextRank(ctx)
	if err != nil {
		return 0, err
	}

	if err := m.store.SetRank(ctx, id, next); err != nil {
		return 0, fmt.Errorf("set rank of %d: %w", id, err)
	}

	return next, nil
}

// Backfill assigns 1..N, in ascending id order, to the records that have no rank and returns N.
// Ranked records are left as they are.
func (m *Manager) Backfill(ctx context.Context) (int, error) {
	ids, err := m.store.Unranked(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unranked: %w", err)
	}

	slices.Sort(ids)

	for i, id := range ids {
		if err := m.store.SetRank(ctx, id, i+1); err != nil {
			return i, fmt.Errorf("set rank of %d: %w", id, err)
		}
	}

	return len(ids), nil
}
