package validators

import (
	"errors"
	"strings"
)

var (
	ErrBucketNameEmpty    = errors.New("no bucket name provided")
	ErrBucketNameTooLong  = errors.New("bucket name can't be longer than 70 characters")
	ErrDescriptionEmpty   = errors.New("no description provided")
	ErrDescriptionTooLong = errors.New("description can't be longer than 100 characters")
	ErrCategoryTooLong    = errors.New("category name can't be longer than 70 characters")
)

func BucketNameValidator(n string) error {
	if strings.TrimSpace(n) == "" {
		return ErrBucketNameEmpty
	}

	if len(n) > 70 {
		return ErrBucketNameTooLong
	}

	return nil
}

func DescriptionValidator(d string) error {
	if strings.TrimSpace(d) == "" {
		return ErrDescriptionEmpty
	}

	if len(d) > 100 {
		return ErrDescriptionTooLong
	}

	return nil
}

// CategoryValidator allows the empty string, a bucket doesn't have to be
// classified
func CategoryValidator(n string) error {
	if len(n) > 70 {
		return ErrCategoryTooLong
	}

	return nil
}
