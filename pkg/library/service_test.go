package library

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
)

type mockCatalogClient struct {
	mock.Mock
}

func (m *mockCatalogClient) ListAssets(ctx context.Context) ([]assets.Asset, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]assets.Asset)
	return list, args.Error(1)
}

func (m *mockCatalogClient) GetAsset(ctx context.Context, id int64) (assets.Asset, error) {
	args := m.Called(ctx, id)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockCatalogClient) CreateFromModelURL(ctx context.Context, sourceURL, apiKey string) (assets.Asset, error) {
	args := m.Called(ctx, sourceURL, apiKey)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockCatalogClient) ImportImage(ctx context.Context, imageID, apiKey string) (assets.Asset, error) {
	args := m.Called(ctx, imageID, apiKey)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockCatalogClient) UpdateAsset(ctx context.Context, id int64, fields catalog.UpdateFields) (assets.Asset, error) {
	args := m.Called(ctx, id, fields)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func (m *mockCatalogClient) DeleteAsset(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCatalogClient) ToggleFavorite(ctx context.Context, id int64) (assets.Asset, error) {
	args := m.Called(ctx, id)
	asset, _ := args.Get(0).(assets.Asset)
	return asset, args.Error(1)
}

func TestRefresh_ReplacesStore(t *testing.T) {
	client := new(mockCatalogClient)
	store := assets.NewStore()
	store.Insert(assets.Asset{ID: 99, Name: "stale"})
	service := NewLibraryService(client, store)

	fresh := []assets.Asset{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	client.On("ListAssets", mock.Anything).Return(fresh, nil)

	got, err := service.Refresh(context.Background())

	require.NoError(t, err)
	require.Equal(t, fresh, got)
	require.Equal(t, fresh, store.Snapshot())
	client.AssertExpectations(t)
}

func TestRefresh_FailureLeavesStoreUntouched(t *testing.T) {
	client := new(mockCatalogClient)
	store := assets.NewStore()
	store.Insert(assets.Asset{ID: 99, Name: "kept"})
	service := NewLibraryService(client, store)

	client.On("ListAssets", mock.Anything).Return(nil, &catalog.APIError{StatusCode: 500})

	_, err := service.Refresh(context.Background())

	require.Error(t, err)
	require.Len(t, store.Snapshot(), 1)
}

func TestGet_PrefersLocalCollection(t *testing.T) {
	client := new(mockCatalogClient)
	store := assets.NewStore()
	store.Insert(assets.Asset{ID: 1, Name: "local"})
	service := NewLibraryService(client, store)

	got, err := service.Get(context.Background(), 1)

	require.NoError(t, err)
	require.Equal(t, "local", got.Name)
	client.AssertNotCalled(t, "GetAsset", mock.Anything, mock.Anything)
}

func TestGet_FallsBackToBackend(t *testing.T) {
	client := new(mockCatalogClient)
	service := NewLibraryService(client, assets.NewStore())

	client.On("GetAsset", mock.Anything, int64(5)).Return(assets.Asset{ID: 5, Name: "remote"}, nil)

	got, err := service.Get(context.Background(), 5)

	require.NoError(t, err)
	require.Equal(t, "remote", got.Name)
	client.AssertExpectations(t)
}

func TestToggleFavorite_UnfavoritedVanishesFromFavoritesView(t *testing.T) {
	client := new(mockCatalogClient)
	store := assets.NewStore()
	store.ReplaceAll([]assets.Asset{
		{ID: 7, Name: "A", IsFavorite: true},
		{ID: 8, Name: "B", IsFavorite: true},
	})
	service := NewLibraryService(client, store)

	client.On("ToggleFavorite", mock.Anything, int64(7)).Return(assets.Asset{ID: 7, Name: "A", IsFavorite: false}, nil)

	updated, removed, err := service.ToggleFavorite(context.Background(), 7, assets.ViewFavorites)

	require.NoError(t, err)
	require.True(t, removed)
	require.False(t, updated.IsFavorite)
	// Count decreased by exactly one; the other element is untouched.
	snap := store.Snapshot()
	require.Len(t, snap, 1)
	require.EqualValues(t, 8, snap[0].ID)
}

func TestToggleFavorite_ReplacesInPlaceUnderAllView(t *testing.T) {
	client := new(mockCatalogClient)
	store := assets.NewStore()
	store.ReplaceAll([]assets.Asset{{ID: 7, Name: "A"}, {ID: 8, Name: "B"}})
	service := NewLibraryService(client, store)

	client.On("ToggleFavorite", mock.Anything, int64(7)).Return(assets.Asset{ID: 7, Name: "A", IsFavorite: true}, nil)

	_, removed, err := service.ToggleFavorite(context.Background(), 7, assets.ViewAll)

	require.NoError(t, err)
	require.False(t, removed)

	snap := store.Snapshot()
	require.Len(t, snap, 2)
	require.True(t, snap[0].IsFavorite)
}

func TestToggleFavorite_FailureLeavesLocalStateUnchanged(t *testing.T) {
	client := new(mockCatalogClient)
	store := assets.NewStore()
	store.ReplaceAll([]assets.Asset{{ID: 7, Name: "A", IsFavorite: true}})
	service := NewLibraryService(client, store)

	client.On("ToggleFavorite", mock.Anything, int64(7)).Return(assets.Asset{}, &catalog.APIError{StatusCode: 500, Detail: "boom"})

	_, _, err := service.ToggleFavorite(context.Background(), 7, assets.ViewFavorites)

	require.Error(t, err)
	snap := store.Snapshot()
	require.Len(t, snap, 1)
	require.True(t, snap[0].IsFavorite)
}
