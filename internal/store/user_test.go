package store

import (
	"testing"

	"bucketlist/bucket-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserExistsLifecycle(t *testing.T) {
	s := newTestStore(t)

	found, err := s.Users.Exists("a@x.com")
	require.NoError(t, err)
	assert.False(t, found)

	user := mustUser(t, s, "a@x.com")
	assert.NotZero(t, user.ID)
	assert.False(t, user.DateJoined.IsZero())
	assert.True(t, user.IsActive)

	found, err = s.Users.Exists("a@x.com")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUserSaveDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	mustUser(t, s, "a@x.com")

	_, err := s.Users.Save(&model.User{
		Email:        "a@x.com",
		PasswordHash: "hash",
	})
	assert.Error(t, err, "duplicate email must surface as a constraint violation")
}

func TestUserGetOrCreate(t *testing.T) {
	s := newTestStore(t)

	existing := mustUser(t, s, "a@x.com")

	got, err := s.Users.GetOrCreate(&model.User{
		Email:        "a@x.com",
		PasswordHash: "other-hash",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, existing.PasswordHash, got.PasswordHash, "existing row wins, no overwrite")

	created, err := s.Users.GetOrCreate(&model.User{
		Email:        "b@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, existing.ID, created.ID)
}

func TestUserDeleteNotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Users.Delete("ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDeleteCascades(t *testing.T) {
	s := newTestStore(t)

	owner := mustUser(t, s, "owner@x.com")
	other := mustUser(t, s, "other@x.com")

	ownerBucket := mustBucket(t, s, owner.ID, "Travel", "See the world")
	mustActivity(t, s, owner.ID, ownerBucket.ID, "Book flights")

	otherBucket := mustBucket(t, s, other.ID, "Reading", "Fifty books a year")
	otherActivity := mustActivity(t, s, other.ID, otherBucket.ID, "Finish chapter one")

	require.NoError(t, s.Users.Delete("owner@x.com"))

	found, err := s.Buckets.Exists(ownerBucket.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, found, "owned buckets must be gone")

	var activityCount int64
	require.NoError(t, s.Activities.db.Model(model.Activity{}).Where("user_id = ?", owner.ID).Count(&activityCount).Error)
	assert.Zero(t, activityCount, "owned activities must be gone")

	// The other account is untouched
	found, err = s.Buckets.Exists(otherBucket.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Activities.Exists(otherBucket.ID, other.ID, otherActivity.ID)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUserDropAll(t *testing.T) {
	s := newTestStore(t)

	mustUser(t, s, "a@x.com")
	mustUser(t, s, "b@x.com")

	require.NoError(t, s.Users.DropAll(Propagate))

	for _, email := range []string{"a@x.com", "b@x.com"} {
		found, err := s.Users.Exists(email)
		require.NoError(t, err)
		assert.False(t, found)
	}
}

func TestUserTouchLastLogin(t *testing.T) {
	s := newTestStore(t)

	user := mustUser(t, s, "a@x.com")
	assert.Nil(t, user.LastLogin)

	require.NoError(t, s.Users.TouchLastLogin(user.ID))

	reloaded, err := s.Users.ByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastLogin)
}
