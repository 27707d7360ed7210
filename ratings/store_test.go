package ratings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ErosMello/jornalescolar/models"
)

type fakeRemote struct {
	upserts   []models.Rating
	byUser    map[string]int
	values    map[string][]int
	failWrite bool
	failRead  bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{byUser: map[string]int{}, values: map[string][]int{}}
}

func (f *fakeRemote) Upsert(ctx context.Context, rating models.Rating) error {
	if f.failWrite {
		return errors.New("remote unavailable")
	}
	f.upserts = append(f.upserts, rating)
	f.byUser[rating.ID] = rating.Value
	return nil
}

func (f *fakeRemote) ByUser(ctx context.Context, postID, userID string) (int, bool, error) {
	if f.failRead {
		return 0, false, errors.New("remote unavailable")
	}
	v, ok := f.byUser[postID+"_"+userID]
	return v, ok, nil
}

func (f *fakeRemote) Values(ctx context.Context, postID string) ([]int, error) {
	if f.failRead {
		return nil, errors.New("remote unavailable")
	}
	return f.values[postID], nil
}

func TestStoreSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("local read reflects submit for every star value", func(t *testing.T) {
		remote := newFakeRemote()
		store := NewStore(NewMemoryCache(), remote)

		for v := 1; v <= 5; v++ {
			require.NoError(t, store.Submit(ctx, "dev1", "uid1", "post1", v, 100))
			got, ok := store.UserRating(ctx, "dev1", "uid1", "post1")
			require.True(t, ok)
			require.Equal(t, v, got)
		}
	})

	t.Run("authenticated submit upserts under composite key", func(t *testing.T) {
		remote := newFakeRemote()
		store := NewStore(NewMemoryCache(), remote)

		require.NoError(t, store.Submit(ctx, "dev1", "uid1", "post1", 4, 100))
		require.Len(t, remote.upserts, 1)
		require.Equal(t, "post1_uid1", remote.upserts[0].ID)
		require.Equal(t, 4, remote.upserts[0].Value)
	})

	t.Run("anonymous submit skips the remote entirely", func(t *testing.T) {
		remote := newFakeRemote()
		store := NewStore(NewMemoryCache(), remote)

		require.NoError(t, store.Submit(ctx, "dev1", "", "post1", 5, 100))
		require.Empty(t, remote.upserts)

		got, ok := store.UserRating(ctx, "dev1", "", "post1")
		require.True(t, ok)
		require.Equal(t, 5, got)
	})

	t.Run("remote failure keeps the local value", func(t *testing.T) {
		remote := newFakeRemote()
		remote.failWrite = true
		store := NewStore(NewMemoryCache(), remote)

		err := store.Submit(ctx, "dev1", "uid1", "post1", 3, 100)
		require.Error(t, err)

		got, ok := store.UserRating(ctx, "dev1", "uid1", "post1")
		require.True(t, ok)
		require.Equal(t, 3, got)
	})

	t.Run("resubmit overwrites the earlier local value", func(t *testing.T) {
		remote := newFakeRemote()
		store := NewStore(NewMemoryCache(), remote)

		require.NoError(t, store.Submit(ctx, "dev1", "uid1", "post1", 2, 100))
		require.NoError(t, store.Submit(ctx, "dev1", "uid1", "post1", 5, 101))

		got, _ := store.UserRating(ctx, "dev1", "uid1", "post1")
		require.Equal(t, 5, got)
	})
}

func TestStoreUserRating(t *testing.T) {
	ctx := context.Background()

	t.Run("local entry wins over a different remote value", func(t *testing.T) {
		remote := newFakeRemote()
		remote.byUser["post1_uid1"] = 2
		store := NewStore(NewMemoryCache(), remote)

		store.cache.Set("dev1", "post1", 5)

		got, ok := store.UserRating(ctx, "dev1", "uid1", "post1")
		require.True(t, ok)
		require.Equal(t, 5, got)
	})

	t.Run("remote fallback only when authenticated", func(t *testing.T) {
		remote := newFakeRemote()
		remote.byUser["post1_uid1"] = 4
		store := NewStore(NewMemoryCache(), remote)

		got, ok := store.UserRating(ctx, "dev2", "uid1", "post1")
		require.True(t, ok)
		require.Equal(t, 4, got)

		_, ok = store.UserRating(ctx, "dev2", "", "post1")
		require.False(t, ok)
	})

	t.Run("remote read failure degrades to no rating", func(t *testing.T) {
		remote := newFakeRemote()
		remote.failRead = true
		store := NewStore(NewMemoryCache(), remote)

		_, ok := store.UserRating(ctx, "dev1", "uid1", "post1")
		require.False(t, ok)
	})

	t.Run("devices do not share cache entries", func(t *testing.T) {
		remote := newFakeRemote()
		store := NewStore(NewMemoryCache(), remote)

		require.NoError(t, store.Submit(ctx, "dev1", "", "post1", 4, 100))

		_, ok := store.UserRating(ctx, "dev2", "", "post1")
		require.False(t, ok)
	})
}

func TestStorePostAverage(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes the full scan", func(t *testing.T) {
		remote := newFakeRemote()
		remote.values["post1"] = []int{5, 5, 5, 4}
		store := NewStore(NewMemoryCache(), remote)

		agg := store.PostAverage(ctx, "post1")
		require.Equal(t, 4.8, agg.Average)
		require.Equal(t, 4, agg.Count)
	})

	t.Run("fetch failure and no ratings are both zero", func(t *testing.T) {
		remote := newFakeRemote()
		store := NewStore(NewMemoryCache(), remote)
		require.Equal(t, Aggregate{}, store.PostAverage(ctx, "post1"))

		remote.failRead = true
		require.Equal(t, Aggregate{}, store.PostAverage(ctx, "post1"))
	})
}
