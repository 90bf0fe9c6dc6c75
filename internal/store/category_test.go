package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLookupIsPure(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Categories.Lookup("Adventure")
	assert.ErrorIs(t, err, ErrNotFound)

	// A failed lookup must not create anything behind the caller's back
	categories, err := s.Categories.All()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryGetOrCreate(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Categories.GetOrCreate("Adventure")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Adventure", created.CategoryName)

	again, err := s.Categories.GetOrCreate("Adventure")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID, "same name must resolve to the same row")

	categories, err := s.Categories.All()
	require.NoError(t, err)
	assert.Len(t, categories, 1, "no duplicate may appear")
}

func TestCategoryAllSorted(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Travel", "Adventure", "Fitness"} {
		_, err := s.Categories.GetOrCreate(name)
		require.NoError(t, err)
	}

	categories, err := s.Categories.All()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Adventure", categories[0].CategoryName)
	assert.Equal(t, "Fitness", categories[1].CategoryName)
	assert.Equal(t, "Travel", categories[2].CategoryName)
}
