// Package orderingtest provides an in-memory ordering.Store for tests.
package orderingtest

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/aliskhannn/corpsite/internal/ordering"
)

// MemStore keeps ranks in a map. A nil rank marks an unranked record.
type MemStore struct {
	mu    sync.Mutex
	ranks map[int64]*int

	// SwapErr, when set, is returned by SwapRanks without changing anything.
	SwapErr error
}

// NewMemStore creates a store holding the given records.
func NewMemStore(items ...ordering.Item) *MemStore {
	s := &MemStore{ranks: make(map[int64]*int, len(items))}
	for _, it := range items {
		s.ranks[it.ID] = copyRank(it.Rank)
	}

	return s
}

// Ranked is a shorthand for building ranked items.
func Ranked(id int64, rank int) ordering.Item {
	return ordering.Item{ID: id, Rank: &rank}
}

// Unranked is a shorthand for building items without a rank.
func Unranked(id int64) ordering.Item {
	return ordering.Item{ID: id}
}

// Items returns a snapshot of every record in display order.
func (s *MemStore) Items() []ordering.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]ordering.Item, 0, len(s.ranks))
	for id, r := range s.ranks {
		items = append(items, ordering.Item{ID: id, Rank: copyRank(r)})
	}

	slices.SortFunc(items, ordering.Compare)

	return items
}

// IDs returns the record ids in display order.
func (s *MemStore) IDs() []int64 {
	items := s.Items()
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	return ids
}

func (s *MemStore) MaxRank(_ context.Context) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	top, found := 0, false
	for _, r := range s.ranks {
		if r != nil && (!found || *r > top) {
			top, found = *r, true
		}
	}

	return top, found, nil
}

func (s *MemStore) Rank(_ context.Context, id int64) (*int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ranks[id]
	if !ok {
		return nil, ordering.ErrNotFound
	}

	return copyRank(r), nil
}

func (s *MemStore) SetRank(_ context.Context, id int64, rank int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ranks[id]; !ok {
		return ordering.ErrNotFound
	}

	s.ranks[id] = &rank

	return nil
}

func (s *MemStore) Before(_ context.Context, rank int) (ordering.Item, bool, error) {
	return s.nearest(func(r int) bool { return r < rank }, func(a, b int) bool { return a > b })
}

func (s *MemStore) After(_ context.Context, rank int) (ordering.Item, bool, error) {
	return s.nearest(func(r int) bool { return r > rank }, func(a, b int) bool { return a < b })
}

func (s *MemStore) nearest(match func(int) bool, better func(a, b int) bool) (ordering.Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best ordering.Item
	found := false
	for id, r := range s.ranks {
		if r == nil || !match(*r) {
			continue
		}

		if !found || better(*r, *best.Rank) || (*r == *best.Rank && id < best.ID) {
			best = ordering.Item{ID: id, Rank: copyRank(r)}
			found = true
		}
	}

	return best, found, nil
}

func (s *MemStore) SwapRanks(_ context.Context, a, b ordering.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SwapErr != nil {
		return s.SwapErr
	}

	if a.Rank == nil || b.Rank == nil {
		return errors.New("swap of unranked record")
	}

	s.ranks[a.ID] = copyRank(b.Rank)
	s.ranks[b.ID] = copyRank(a.Rank)

	return nil
}

func (s *MemStore) Unranked(_ context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int64
	for id, r := range s.ranks {
		if r == nil {
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return ids, nil
}

func copyRank(r *int) *int {
	if r == nil {
		return nil
	}

	v := *r

	return &v
}
