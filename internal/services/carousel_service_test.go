package services

import (
	"testing"

	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCarouselCreateAssignsIncreasingOrder(t *testing.T) {
	svc := NewCarouselService(newTestDB(t))

	first, err := svc.Create("/api/uploads/hero_a.jpg", "first slide")
	require.NoError(t, err)
	second, err := svc.Create("/api/uploads/hero_b.jpg", "second slide")
	require.NoError(t, err)

	require.Equal(t, first.Order+1, second.Order)
	require.True(t, first.Enabled)
}

func TestCarouselGetEnabledFiltersAndSorts(t *testing.T) {
	svc := NewCarouselService(newTestDB(t))

	a, err := svc.Create("/api/uploads/hero_a.jpg", "a")
	require.NoError(t, err)
	b, err := svc.Create("/api/uploads/hero_b.jpg", "b")
	require.NoError(t, err)
	c, err := svc.Create("/api/uploads/hero_c.jpg", "c")
	require.NoError(t, err)

	disabled := false
	_, err = svc.Update(b.ID, models.HeroCarouselUpdate{Enabled: &disabled})
	require.NoError(t, err)

	// Move c ahead of a.
	err = svc.Reorder(models.HeroCarouselReorder{Items: []models.HeroCarouselPosition{
		{ID: c.ID, Order: 1},
		{ID: a.ID, Order: 2},
	}})
	require.NoError(t, err)

	enabled, err := svc.GetEnabled()
	require.NoError(t, err)
	require.Len(t, enabled, 2)
	require.Equal(t, c.ID, enabled[0].ID)
	require.Equal(t, a.ID, enabled[1].ID)

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestCarouselDeleteReturnsItem(t *testing.T) {
	svc := NewCarouselService(newTestDB(t))

	item, err := svc.Create("/api/uploads/hero_a.jpg", "a")
	require.NoError(t, err)

	deleted, err := svc.Delete(item.ID)
	require.NoError(t, err)
	require.Equal(t, item.URL, deleted.URL)

	_, err = svc.GetByID(item.ID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Delete(item.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
