// Package store implements the repository layer sitting between the HTTP
// handlers and the ORM session. Every lookup and mutation is scoped to the
// owning user so one account can never touch another account's rows.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a scoped lookup matches no row. Deletes check
// for it first instead of removing an absent reference.
var ErrNotFound = errors.New("record not found")

// ErrorPolicy controls how bulk operations treat failures.
type ErrorPolicy int

const (
	// Propagate rolls back and returns the error to the caller.
	Propagate ErrorPolicy = iota
	// Suppress rolls back, logs the error and reports success.
	Suppress
)

type Store struct {
	Users      *UserStore
	Buckets    *BucketStore
	Categories *CategoryStore
	Activities *ActivityStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:      &UserStore{db: db},
		Buckets:    &BucketStore{db: db},
		Categories: &CategoryStore{db: db},
		Activities: &ActivityStore{db: db},
	}
}

// isPostgres reports whether the session talks to Postgres, the only dialect
// carrying the generated tsvector search columns.
func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
