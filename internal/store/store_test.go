package store

import (
	"fmt"
	"testing"

	"bucketlist/bucket-api/db"
	"bucketlist/bucket-api/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a fresh named in-memory SQLite database with foreign
// keys enabled so the FK cascades behave like production
func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(conn))

	return New(conn)
}

func mustUser(t *testing.T, s *Store, email string) *model.User {
	t.Helper()

	user, err := s.Users.Save(&model.User{
		Email:        email,
		PasswordHash: "$argon2id$not-a-real-hash",
		IsActive:     true,
	})
	require.NoError(t, err)

	return user
}

func mustBucket(t *testing.T, s *Store, userID uint, name, description string) *model.Bucket {
	t.Helper()

	bucket, err := s.Buckets.Save(&model.Bucket{
		BucketName:  name,
		Description: description,
		UserID:      userID,
	})
	require.NoError(t, err)

	return bucket
}

func mustActivity(t *testing.T, s *Store, userID, bucketID uint, description string) *model.Activity {
	t.Helper()

	activity, err := s.Activities.Save(&model.Activity{
		Description: description,
		BucketID:    bucketID,
		UserID:      userID,
	})
	require.NoError(t, err)

	return activity
}
