package assets

import "sync"

// Filter returns the assets visible under the given view, preserving the
// original relative order. Favorites-derived views keep only flagged assets;
// every other view returns the input as-is, so callers must not assume the
// result is a fresh slice.
func Filter(list []Asset, view ViewMode) []Asset {
	if !view.FavoritesOnly() {
		return list
	}
	out := make([]Asset, 0, len(list))
	for _, a := range list {
		if a.IsFavorite {
			out = append(out, a)
		}
	}
	return out
}

// ApplyFavoriteToggleResult reconciles one server-confirmed favorite toggle
// into a collection. Under a favorites-derived view an asset whose flag
// dropped to false is removed; otherwise the matching asset is replaced in
// place. A collection without the id is returned unchanged.
func ApplyFavoriteToggleResult(list []Asset, updated Asset, view ViewMode) []Asset {
	if view.FavoritesOnly() && !updated.IsFavorite {
		out := make([]Asset, 0, len(list))
		for _, a := range list {
			if a.ID != updated.ID {
				out = append(out, a)
			}
		}
		return out
	}

	out := make([]Asset, len(list))
	for i, a := range list {
		if a.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = a
		}
	}
	return out
}

// Store holds the gateway's copy of the asset collection. It owns no network
// logic; every mutation is a server-confirmed result passed in by a caller.
type Store struct {
	mu     sync.RWMutex
	assets []Asset
}

func NewStore() *Store {
	return &Store{assets: make([]Asset, 0)}
}

// ReplaceAll swaps in a freshly fetched collection.
func (s *Store) ReplaceAll(list []Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = make([]Asset, len(list))
	copy(s.assets, list)
}

// Snapshot returns a copy of the full collection.
func (s *Store) Snapshot() []Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// List returns the collection filtered for the given view.
func (s *Store) List(view ViewMode) []Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := Filter(s.assets, view)
	out := make([]Asset, len(filtered))
	copy(out, filtered)
	return out
}

// Get looks up an asset by id.
func (s *Store) Get(id int64) (Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// Insert appends a newly created asset.
func (s *Store) Insert(a Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append(s.assets, a)
}

// Replace swaps a confirmed update into the collection by id. Unknown ids
// are ignored.
func (s *Store) Replace(updated Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.assets {
		if a.ID == updated.ID {
			s.assets[i] = updated
			return
		}
	}
}

// Remove drops an asset after a confirmed delete. Returns whether it was
// present.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.assets {
		if a.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyFavorite reconciles a confirmed favorite toggle under the given view.
// Returns true when the asset fell out of the view (local list removal, not
// a backend delete).
func (s *Store) ApplyFavorite(updated Asset, view ViewMode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := view.FavoritesOnly() && !updated.IsFavorite
	s.assets = ApplyFavoriteToggleResult(s.assets, updated, view)
	return removed
}
