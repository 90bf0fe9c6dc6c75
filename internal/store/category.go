package store

import (
	"errors"

	"bucketlist/bucket-api/internal/model"

	"gorm.io/gorm"
)

type CategoryStore struct {
	db *gorm.DB
}

// Lookup returns the category with the given name or ErrNotFound. Unlike
// the legacy exists check it never creates anything as a side effect.
func (s *CategoryStore) Lookup(name string) (*model.Category, error) {
	var category model.Category

	err := s.db.Where("category_name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &category, nil
}

// GetOrCreate returns the category with the given name, creating it first
// if missing. Backed by the unique name constraint, losing a creation race
// falls back to a lookup.
func (s *CategoryStore) GetOrCreate(name string) (*model.Category, error) {
	existing, err := s.Lookup(name)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	category := model.Category{CategoryName: name}

	if err := s.db.Create(&category).Error; err != nil {
		if isDuplicate(err) {
			return s.Lookup(name)
		}
		return nil, err
	}

	return &category, nil
}

// Save persists the category and returns the reloaded row.
func (s *CategoryStore) Save(category *model.Category) (*model.Category, error) {
	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}

	var reloaded model.Category
	if err := s.db.Where("id = ?", category.ID).First(&reloaded).Error; err != nil {
		return nil, err
	}

	return &reloaded, nil
}

// All lists every category ordered by name.
func (s *CategoryStore) All() ([]model.Category, error) {
	var categories []model.Category

	err := s.db.Order("category_name asc").Find(&categories).Error
	return categories, err
}
