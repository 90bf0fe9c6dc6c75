package store

import (
	"errors"
	"strings"

	"bucketlist/bucket-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BucketStore struct {
	db *gorm.DB
}

// Save persists the bucket and returns the reloaded row with its owner
// attached, ready for serialization.
func (s *BucketStore) Save(bucket *model.Bucket) (*model.Bucket, error) {
	if err := s.db.Omit(clause.Associations).Save(bucket).Error; err != nil {
		return nil, err
	}

	return s.byID(bucket.ID)
}

func (s *BucketStore) byID(id uint) (*model.Bucket, error) {
	var bucket model.Bucket

	err := s.db.Preload("User").Where("id = ?", id).First(&bucket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &bucket, nil
}

// Get returns the bucket only if it belongs to the given user. Ownership is
// enforced by filtering, a foreign bucket is indistinguishable from a
// missing one.
func (s *BucketStore) Get(bucketID, userID uint) (*model.Bucket, error) {
	var bucket model.Bucket

	err := s.db.
		Preload("User").
		Where("id = ? AND user_id = ?", bucketID, userID).
		First(&bucket).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &bucket, nil
}

// Exists is the ownership-scoped existence check.
func (s *BucketStore) Exists(bucketID, userID uint) (bool, error) {
	var found bool

	err := s.db.
		Model(model.Bucket{}).
		Select("count(*) > 0").
		Where("id = ? AND user_id = ?", bucketID, userID).
		Find(&found).
		Error

	return found, err
}

// Delete removes the bucket only if it belongs to the given user, taking
// its activities with it. Returns ErrNotFound when no matching row exists.
func (s *BucketStore) Delete(bucketID, userID uint) error {
	var bucket model.Bucket

	err := s.db.
		Where("id = ? AND user_id = ?", bucketID, userID).
		First(&bucket).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Delete(&bucket).Error
}

// ByUser lists the user's buckets, newest first.
func (s *BucketStore) ByUser(userID uint, limit, offset int) ([]model.Bucket, error) {
	var buckets []model.Bucket

	err := s.db.
		Preload("User").
		Where("user_id = ?", userID).
		Order("created desc").
		Offset(offset).
		Limit(limit).
		Find(&buckets).
		Error

	return buckets, err
}

// Search runs full-text search over bucket_name and description, scoped to
// the owner. On Postgres it matches against the generated search vector,
// everywhere else it degrades to a LIKE scan over the source fields.
func (s *BucketStore) Search(userID uint, query string, limit, offset int) ([]model.Bucket, error) {
	q := s.db.Preload("User").Where("user_id = ?", userID)

	if isPostgres(s.db) {
		q = q.Where("search_vector @@ plainto_tsquery('english', ?)", query)
	} else {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("lower(bucket_name) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}

	var buckets []model.Bucket

	err := q.
		Order("created desc").
		Offset(offset).
		Limit(limit).
		Find(&buckets).
		Error

	return buckets, err
}
