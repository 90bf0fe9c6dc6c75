package store

import (
	"errors"
	"time"

	"bucketlist/bucket-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStore struct {
	db *gorm.DB
}

// Exists reports whether a user with the given email is registered.
func (s *UserStore) Exists(email string) (bool, error) {
	var found bool

	err := s.db.
		Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&found).
		Error

	return found, err
}

// ByEmail returns the user with the given email or ErrNotFound.
func (s *UserStore) ByEmail(email string) (*model.User, error) {
	var user model.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ByID returns the user with the given ID or ErrNotFound.
func (s *UserStore) ByID(id uint) (*model.User, error) {
	var user model.User

	err := s.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Save persists the user and returns the freshly reloaded row matched by
// email. A duplicate email surfaces as a constraint violation from the
// store, not as a silent overwrite.
func (s *UserStore) Save(user *model.User) (*model.User, error) {
	if err := s.db.Omit(clause.Associations).Save(user).Error; err != nil {
		return nil, err
	}

	return s.ByEmail(user.Email)
}

// GetOrCreate returns the row matching the user's email, creating it first
// if missing. Two concurrent creators race on the unique email constraint
// and the loser retries as a lookup.
func (s *UserStore) GetOrCreate(user *model.User) (*model.User, error) {
	existing, err := s.ByEmail(user.Email)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		if isDuplicate(err) {
			return s.ByEmail(user.Email)
		}
		return nil, err
	}

	return s.ByEmail(user.Email)
}

// Delete removes the user with the given email. Every bucket and activity
// they own goes with them through the FK cascades. Returns ErrNotFound when
// no such user exists.
func (s *UserStore) Delete(email string) error {
	user, err := s.ByEmail(email)
	if err != nil {
		return err
	}

	return s.db.Delete(user).Error
}

// DropAll deletes every user row in a single transaction, all or nothing.
// With Suppress a failed run is rolled back and logged but reported as
// success, which is what the legacy callers expect.
func (s *UserStore) DropAll(policy ErrorPolicy) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.User{}).
			Error
	})
	if err != nil {
		if policy == Suppress {
			zap.L().Warn("Failed to drop all users, rolled back", zap.Error(err))
			return nil
		}
		return err
	}

	return nil
}

// TouchLastLogin stamps a successful login on the user row.
func (s *UserStore) TouchLastLogin(id uint) error {
	return s.db.
		Model(model.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).
		Error
}
