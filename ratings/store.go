package ratings

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ErosMello/jornalescolar/models"
)

// Remote is the hosted tier of the rating store.
type Remote interface {
	// Upsert writes the rating keyed by "{postId}_{uid}", overwriting any
	// earlier value from the same rater.
	Upsert(ctx context.Context, rating models.Rating) error
	// ByUser returns the rater's value for the post, or ok=false when none
	// exists.
	ByUser(ctx context.Context, postID, userID string) (int, bool, error)
	// Values returns every star value recorded for the post. No limit: the
	// scan grows linearly with the rating count.
	Values(ctx context.Context, postID string) ([]int, error)
}

// Store combines the device-local cache with the remote collection.
//
// Staleness contract: the local tier always wins on read once populated,
// and a failed remote write is reported but never rolled back, so the two
// tiers may diverge silently. That is deliberate: the cache answers "what
// did this device last submit", not "what is persisted".
type Store struct {
	cache  Cache
	remote Remote
}

func NewStore(cache Cache, remote Remote) *Store {
	return &Store{cache: cache, remote: remote}
}

// Submit records the value locally first, synchronously, for every caller.
// When uid is non-empty the value is also upserted remotely in a single
// attempt; a remote failure is returned for surfacing but the local entry
// stays. Anonymous raters get a local-only rating.
//
// The value is expected to be in [1,5]; enforcement sits with the handler.
func (s *Store) Submit(ctx context.Context, deviceID, uid, postID string, value int, now int64) error {
	s.cache.Set(deviceID, postID, value)

	if uid == "" {
		return nil
	}

	err := s.remote.Upsert(ctx, models.Rating{
		ID:        postID + "_" + uid,
		PostID:    postID,
		UserID:    uid,
		Value:     value,
		Timestamp: now,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"postId": postID,
			"userId": uid,
		}).Warn("remote rating write failed, local value kept")
		return err
	}
	return nil
}

// UserRating returns the rating to show this device for the post. The local
// entry takes absolute precedence; the remote store is consulted only when
// no local entry exists and the caller is authenticated. ok=false means no
// rating from either tier.
func (s *Store) UserRating(ctx context.Context, deviceID, uid, postID string) (int, bool) {
	if v, ok := s.cache.Get(deviceID, postID); ok {
		return v, true
	}

	if uid == "" {
		return 0, false
	}

	v, ok, err := s.remote.ByUser(ctx, postID, uid)
	if err != nil {
		logrus.WithError(err).WithField("postId", postID).Warn("remote rating lookup failed")
		return 0, false
	}
	return v, ok
}

// PostAverage scans every rating for the post and summarizes it. A fetch
// failure degrades to {0, 0}, indistinguishable from a post nobody rated.
func (s *Store) PostAverage(ctx context.Context, postID string) Aggregate {
	values, err := s.remote.Values(ctx, postID)
	if err != nil {
		logrus.WithError(err).WithField("postId", postID).Warn("rating scan failed")
		return Aggregate{}
	}
	return Summarize(values)
}
