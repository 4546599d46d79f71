package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeddingGetAllSortsByDateDesc(t *testing.T) {
	svc := NewWeddingService(newTestDB(t))

	_, err := svc.Create("/api/uploads/wedding_a.jpg", "Asha", "Rohan", "2023-11-20", "Kolkata")
	require.NoError(t, err)
	newest, err := svc.Create("/api/uploads/wedding_b.jpg", "Mira", "Dev", "2024-02-14", "Darjeeling")
	require.NoError(t, err)
	_, err = svc.Create("/api/uploads/wedding_c.jpg", "Rhea", "Arjun", "2022-06-01", "Goa")
	require.NoError(t, err)

	weddings, err := svc.GetAll(0)
	require.NoError(t, err)
	require.Len(t, weddings, 3)
	require.Equal(t, newest.ID, weddings[0].ID)

	limited, err := svc.GetAll(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}

func TestWeddingGallery(t *testing.T) {
	svc := NewWeddingService(newTestDB(t))

	w, err := svc.Create("/api/uploads/wedding_a.jpg", "Asha", "Rohan", "2023-11-20", "Kolkata")
	require.NoError(t, err)
	require.Empty(t, w.Images)

	w, err = svc.AddImages(w.ID, []string{"/api/uploads/wedding_1.jpg", "/api/uploads/wedding_2.jpg"})
	require.NoError(t, err)
	require.Len(t, w.Images, 2)

	removed, err := svc.RemoveImage(w.ID, 0)
	require.NoError(t, err)
	require.Equal(t, "/api/uploads/wedding_1.jpg", removed)

	w, err = svc.GetByID(w.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"/api/uploads/wedding_2.jpg"}, w.Images)

	_, err = svc.RemoveImage(w.ID, 5)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.RemoveImage(w.ID, -1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWeddingUpdatePartial(t *testing.T) {
	svc := NewWeddingService(newTestDB(t))

	w, err := svc.Create("/api/uploads/wedding_a.jpg", "Asha", "Rohan", "2023-11-20", "Kolkata")
	require.NoError(t, err)

	location := "Shillong"
	updated, err := svc.Update(w.ID, nil, nil, nil, &location, nil)
	require.NoError(t, err)
	require.Equal(t, "Shillong", updated.Location)
	require.Equal(t, "Asha", updated.BrideName)
	require.Equal(t, w.CoverImage, updated.CoverImage)

	_, err = svc.Update("no-such-id", nil, nil, nil, &location, nil)
	require.ErrorIs(t, err, ErrNotFound)
}
