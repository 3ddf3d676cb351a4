package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/favsync/internal/mock"
	"github.com/MKhiriev/favsync/models"
)

func TestCategoryReconciler_CreatesAndRenames(t *testing.T) {
	h := newSyncHarness(t, newFakeRemote(), SyncOptions{})
	h.categories(t, "Old")
	ctx := context.Background()

	got, err := NewCategoryReconciler(h.storage.Library).Reconcile(ctx, []string{"Reading", "Plan"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Reading", got[0].Name)
	assert.Equal(t, "Plan", got[1].Name)
	assert.NotZero(t, got[1].ID)

	stored, err := h.storage.Library.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestCategoryReconciler_KeepsExtraLocalCategories(t *testing.T) {
	h := newSyncHarness(t, newFakeRemote(), SyncOptions{})
	h.categories(t, "A", "B", "Local only")

	got, err := NewCategoryReconciler(h.storage.Library).Reconcile(context.Background(), []string{"A", "Renamed"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "Renamed", "Local only"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, 2, got[2].Order)
}

func TestCategoryReconciler_CapsRemoteNames(t *testing.T) {
	h := newSyncHarness(t, newFakeRemote(), SyncOptions{})
	names := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}

	got, err := NewCategoryReconciler(h.storage.Library).Reconcile(context.Background(), names)
	require.NoError(t, err)
	assert.Len(t, got, models.FavoriteCategoryCount)
}

func TestCategoryReconciler_NoWritesWhenUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	library := mock.NewMockLibraryRepository(ctrl)

	library.EXPECT().GetCategories(gomock.Any()).Return([]models.Category{
		{ID: 1, Name: "Reading", Order: 0},
		{ID: 2, Name: "Plan", Order: 1},
	}, nil)

	got, err := NewCategoryReconciler(library).Reconcile(context.Background(), []string{"Reading", "Plan"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCategoryReconciler_RenumbersOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	library := mock.NewMockLibraryRepository(ctrl)

	library.EXPECT().GetCategories(gomock.Any()).Return([]models.Category{
		{ID: 4, Name: "Reading", Order: 3},
		{ID: 9, Name: "Extra", Order: 7},
	}, nil)
	library.EXPECT().UpdateCategories(gomock.Any(), []models.Category{
		{ID: 4, Name: "Reading", Order: 0},
		{ID: 9, Name: "Extra", Order: 1},
	}).Return(nil)

	_, err := NewCategoryReconciler(library).Reconcile(context.Background(), []string{"Reading"})
	require.NoError(t, err)
}
