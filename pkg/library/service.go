// Package library plays the hosting-view role: it owns the wiring between
// the catalog backend, the in-memory asset store, and the change feed. All
// store mutations happen here, and only on server-confirmed results.
package library

import (
	"context"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
)

type LibraryService interface {
	Refresh(ctx context.Context) ([]assets.Asset, error)
	List(view assets.ViewMode) []assets.Asset
	Get(ctx context.Context, id int64) (assets.Asset, error)
	ToggleFavorite(ctx context.Context, id int64, view assets.ViewMode) (assets.Asset, bool, error)
}

type libraryService struct {
	client catalog.Client
	store  *assets.Store
}

func NewLibraryService(client catalog.Client, store *assets.Store) LibraryService {
	return &libraryService{client: client, store: store}
}

// Refresh replaces the local collection with the backend's current state.
func (s *libraryService) Refresh(ctx context.Context) ([]assets.Asset, error) {
	list, err := s.client.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	s.store.ReplaceAll(list)
	return list, nil
}

func (s *libraryService) List(view assets.ViewMode) []assets.Asset {
	return s.store.List(view)
}

// Get serves from the local collection when possible and falls back to the
// backend for assets outside the active view.
func (s *libraryService) Get(ctx context.Context, id int64) (assets.Asset, error) {
	if a, ok := s.store.Get(id); ok {
		return a, nil
	}
	return s.client.GetAsset(ctx, id)
}

// ToggleFavorite flips the flag server-side and reconciles the confirmed
// result into the collection. The returned bool reports whether the asset
// fell out of the given view (a local list removal, not a backend delete).
// There is no optimistic flip: a failed request leaves local state alone.
func (s *libraryService) ToggleFavorite(ctx context.Context, id int64, view assets.ViewMode) (assets.Asset, bool, error) {
	updated, err := s.client.ToggleFavorite(ctx, id)
	if err != nil {
		return assets.Asset{}, false, err
	}

	removed := s.store.ApplyFavorite(updated, view)
	return updated, removed, nil
}
