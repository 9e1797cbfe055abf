package ordering_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/corpsite/internal/ordering"
	"github.com/aliskhannn/corpsite/internal/ordering/orderingtest"
)

func rankOf(t *testing.T, s *orderingtest.MemStore, id int64) int {
	t.Helper()

	r, err := s.Rank(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, r)

	return *r
}

func TestManager_NextRank(t *testing.T) {
	ctx := context.Background()

	empty := ordering.NewManager(orderingtest.NewMemStore())
	next, err := empty.NextRank(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	onlyUnranked := ordering.NewManager(orderingtest.NewMemStore(orderingtest.Unranked(1)))
	next, err = onlyUnranked.NextRank(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	gaps := ordering.NewManager(orderingtest.NewMemStore(
		orderingtest.Ranked(1, 1),
		orderingtest.Ranked(2, 3),
		orderingtest.Ranked(3, 5),
	))
	next, err = gaps.NextRank(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, next)
}

func TestManager_Backfill(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{0, 1, 2, 7} {
		items := make([]ordering.Item, 0, n)
		// insert in reverse so the store cannot rely on insertion order
		for id := n; id >= 1; id-- {
			items = append(items, orderingtest.Unranked(int64(id*10)))
		}

		store := orderingtest.NewMemStore(items...)
		m := ordering.NewManager(store)

		assigned, err := m.Backfill(ctx)
		require.NoError(t, err)
		assert.Equal(t, n, assigned)

		for i := 1; i <= n; i++ {
			assert.Equal(t, i, rankOf(t, store, int64(i*10)))
		}

		before := store.Items()
		assigned, err = m.Backfill(ctx)
		require.NoError(t, err)
		assert.Zero(t, assigned)
		assert.Equal(t, before, store.Items())
	}
}

func TestManager_Backfill_KeepsRanked(t *testing.T) {
	store := orderingtest.NewMemStore(
		orderingtest.Ranked(1, 4),
		orderingtest.Unranked(2),
		orderingtest.Unranked(3),
	)

	assigned, err := ordering.NewManager(store).Backfill(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, assigned)

	assert.Equal(t, 4, rankOf(t, store, 1))
	assert.Equal(t, 1, rankOf(t, store, 2))
	assert.Equal(t, 2, rankOf(t, store, 3))
}

func TestManager_PromoteDemote_Edges(t *testing.T) {
	ctx := context.Background()
	store := orderingtest.NewMemStore(
		orderingtest.Ranked(1, 1),
		orderingtest.Ranked(2, 2),
		orderingtest.Ranked(3, 3),
	)
	m := ordering.NewManager(store)

	move, err := m.Promote(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, ordering.AlreadyFirst, move)

	move, err = m.Demote(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, ordering.AlreadyLast, move)

	assert.Equal(t, []int64{1, 2, 3}, store.IDs())
}

func TestManager_PromoteDemote_SingleRecord(t *testing.T) {
	ctx := context.Background()
	m := ordering.NewManager(orderingtest.NewMemStore(orderingtest.Ranked(9, 1)))

	move, err := m.Promote(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, ordering.AlreadyFirst, move)

	move, err = m.Demote(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, ordering.AlreadyLast, move)
}

func TestManager_PromoteThenDemote_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := orderingtest.NewMemStore(
		orderingtest.Ranked(1, 10),
		orderingtest.Ranked(2, 20),
		orderingtest.Ranked(3, 30),
		orderingtest.Ranked(4, 40),
	)
	m := ordering.NewManager(store)
	original := store.Items()

	move, err := m.Promote(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, ordering.Moved, move)
	assert.Equal(t, []int64{1, 3, 2, 4}, store.IDs())

	move, err = m.Demote(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, ordering.Moved, move)
	assert.Equal(t, original, store.Items())
}

func TestManager_Promote_UnrankedGetsRankFirst(t *testing.T) {
	ctx := context.Background()
	store := orderingtest.NewMemStore(
		orderingtest.Ranked(1, 1),
		orderingtest.Ranked(2, 2),
		orderingtest.Unranked(3),
	)
	m := ordering.NewManager(store)

	move, err := m.Promote(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, ordering.Moved, move)

	assert.Equal(t, []int64{1, 3, 2}, store.IDs())
	assert.Equal(t, 2, rankOf(t, store, 3))
	assert.Equal(t, 3, rankOf(t, store, 2))
}

func TestManager_Demote_UnrankedBecomesLast(t *testing.T) {
	ctx := context.Background()
	store := orderingtest.NewMemStore(
		orderingtest.Ranked(1, 1),
		orderingtest.Unranked(2),
	)

	move, err := ordering.NewManager(store).Demote(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, ordering.AlreadyLast, move)
	assert.Equal(t, 2, rankOf(t, store, 2))
}

func TestManager_Promote_NotFound(t *testing.T) {
	_, err := ordering.NewManager(orderingtest.NewMemStore()).Promote(context.Background(), 42)
	assert.ErrorIs(t, err, ordering.ErrNotFound)
}

func TestManager_Promote_SwapFailureLeavesRanks(t *testing.T) {
	store := orderingtest.NewMemStore(
		orderingtest.Ranked(1, 1),
		orderingtest.Ranked(2, 2),
	)
	store.SwapErr = errors.New("db down")

	_, err := ordering.NewManager(store).Promote(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, []int64{1, 2}, store.IDs())
}
