package store

import (
	"errors"
	"strings"

	"bucketlist/bucket-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityStore struct {
	db *gorm.DB
}

// Save persists the activity and returns the reloaded row with its owner
// attached. The target bucket must belong to the activity's user, a
// mismatch reads the same as a missing bucket.
func (s *ActivityStore) Save(activity *model.Activity) (*model.Activity, error) {
	buckets := BucketStore{db: s.db}

	owned, err := buckets.Exists(activity.BucketID, activity.UserID)
	if err != nil {
		return nil, err
	}

	if !owned {
		return nil, ErrNotFound
	}

	if err := s.db.Omit(clause.Associations).Save(activity).Error; err != nil {
		return nil, err
	}

	return s.byID(activity.ID)
}

func (s *ActivityStore) byID(id uint) (*model.Activity, error) {
	var activity model.Activity

	err := s.db.Preload("User").Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &activity, nil
}

// Get returns the activity only if all three keys match the stored row.
func (s *ActivityStore) Get(bucketID, userID, activityID uint) (*model.Activity, error) {
	var activity model.Activity

	err := s.db.
		Preload("User").
		Where("id = ? AND bucket_id = ? AND user_id = ?", activityID, bucketID, userID).
		First(&activity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &activity, nil
}

// Exists is the triple-scoped existence check. All of bucket, user and
// activity must match simultaneously.
func (s *ActivityStore) Exists(bucketID, userID, activityID uint) (bool, error) {
	var found bool

	err := s.db.
		Model(model.Activity{}).
		Select("count(*) > 0").
		Where("id = ? AND bucket_id = ? AND user_id = ?", activityID, bucketID, userID).
		Find(&found).
		Error

	return found, err
}

// Delete removes the activity matching all three keys. Returns ErrNotFound
// when no such row exists.
func (s *ActivityStore) Delete(bucketID, userID, activityID uint) error {
	var activity model.Activity

	err := s.db.
		Where("id = ? AND bucket_id = ? AND user_id = ?", activityID, bucketID, userID).
		First(&activity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Delete(&activity).Error
}

// ByBucket lists the activities of a bucket owned by the given user, newest
// first.
func (s *ActivityStore) ByBucket(bucketID, userID uint, limit, offset int) ([]model.Activity, error) {
	var activities []model.Activity

	err := s.db.
		Preload("User").
		Where("bucket_id = ? AND user_id = ?", bucketID, userID).
		Order("created desc").
		Offset(offset).
		Limit(limit).
		Find(&activities).
		Error

	return activities, err
}

// Search runs full-text search over activity descriptions, scoped to the
// owner. Same dialect split as the bucket search.
func (s *ActivityStore) Search(userID uint, query string, limit, offset int) ([]model.Activity, error) {
	q := s.db.Preload("User").Where("user_id = ?", userID)

	if isPostgres(s.db) {
		q = q.Where("search_vector @@ plainto_tsquery('english', ?)", query)
	} else {
		q = q.Where("lower(description) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var activities []model.Activity

	err := q.
		Order("created desc").
		Offset(offset).
		Limit(limit).
		Find(&activities).
		Error

	return activities, err
}
