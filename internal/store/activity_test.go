package store

import (
	"testing"

	"bucketlist/bucket-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitySaveRejectsForeignBucket(t *testing.T) {
	s := newTestStore(t)

	owner := mustUser(t, s, "owner@x.com")
	other := mustUser(t, s, "other@x.com")

	bucket := mustBucket(t, s, owner.ID, "Travel", "See the world")

	_, err := s.Activities.Save(&model.Activity{
		Description: "Sneak into someone's list",
		BucketID:    bucket.ID,
		UserID:      other.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound, "activity user and bucket owner must match")
}

func TestActivityExistsTripleScoping(t *testing.T) {
	s := newTestStore(t)

	owner := mustUser(t, s, "owner@x.com")
	other := mustUser(t, s, "other@x.com")

	bucket := mustBucket(t, s, owner.ID, "Travel", "See the world")
	otherBucket := mustBucket(t, s, owner.ID, "Fitness", "Run a marathon")

	activity := mustActivity(t, s, owner.ID, bucket.ID, "Book flights")

	cases := []struct {
		name       string
		bucketID   uint
		userID     uint
		activityID uint
		want       bool
	}{
		{"all match", bucket.ID, owner.ID, activity.ID, true},
		{"wrong bucket", otherBucket.ID, owner.ID, activity.ID, false},
		{"wrong user", bucket.ID, other.ID, activity.ID, false},
		{"wrong activity", bucket.ID, owner.ID, activity.ID + 100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := s.Activities.Exists(tc.bucketID, tc.userID, tc.activityID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, found)
		})
	}
}

func TestActivityDeleteTripleScoping(t *testing.T) {
	s := newTestStore(t)

	owner := mustUser(t, s, "owner@x.com")
	other := mustUser(t, s, "other@x.com")

	bucket := mustBucket(t, s, owner.ID, "Travel", "See the world")
	activity := mustActivity(t, s, owner.ID, bucket.ID, "Book flights")

	err := s.Activities.Delete(bucket.ID, other.ID, activity.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Activities.Delete(bucket.ID, owner.ID, activity.ID))

	err = s.Activities.Delete(bucket.ID, owner.ID, activity.ID)
	assert.ErrorIs(t, err, ErrNotFound, "second delete must report not found")
}

func TestActivitySerialize(t *testing.T) {
	s := newTestStore(t)

	owner := mustUser(t, s, "owner@x.com")
	bucket := mustBucket(t, s, owner.ID, "Travel", "See the world")
	activity := mustActivity(t, s, owner.ID, bucket.ID, "Book flights")

	serialized := activity.Serialize()

	assert.Equal(t, activity.ID, serialized.ActivityID)
	assert.Equal(t, "Book flights", serialized.Description)
	assert.Equal(t, "owner@x.com", serialized.User)
	assert.Equal(t, bucket.ID, serialized.BucketID)
	assert.Equal(t, activity.Created, serialized.Created)
	assert.Equal(t, activity.Updated, serialized.Updated)
}

func TestActivitySearch(t *testing.T) {
	s := newTestStore(t)

	owner := mustUser(t, s, "owner@x.com")
	other := mustUser(t, s, "other@x.com")

	bucket := mustBucket(t, s, owner.ID, "Travel", "See the world")
	otherBucket := mustBucket(t, s, other.ID, "Travel", "Visit every continent")

	mustActivity(t, s, owner.ID, bucket.ID, "Book flights to Tokyo")
	mustActivity(t, s, owner.ID, bucket.ID, "Renew passport")
	mustActivity(t, s, other.ID, otherBucket.ID, "Book flights to Lima")

	results, err := s.Activities.Search(owner.ID, "flights", 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 1, "search must stay inside the owner's activities")
	assert.Equal(t, "Book flights to Tokyo", results[0].Description)
	assert.Equal(t, "owner@x.com", results[0].User.Email)

	results, err = s.Activities.Search(owner.ID, "submarine", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
