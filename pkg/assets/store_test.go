package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleAssets() []Asset {
	return []Asset{
		{ID: 1, Name: "A", IsFavorite: true},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C", IsFavorite: true},
		{ID: 4, Name: "D"},
	}
}

func TestFilter_FavoritesKeepsOnlyFlaggedInOrder(t *testing.T) {
	got := Filter(sampleAssets(), ViewFavorites)

	require.Len(t, got, 2)
	require.EqualValues(t, 1, got[0].ID)
	require.EqualValues(t, 3, got[1].ID)
}

func TestFilter_FavoritesCategoryBehavesLikeFavorites(t *testing.T) {
	got := Filter(sampleAssets(), ViewByCategory("Favorites"))

	require.Len(t, got, 2)
	require.True(t, got[0].IsFavorite)
	require.True(t, got[1].IsFavorite)
}

func TestFilter_AllAndUnknownCategoryReturnInputUnchanged(t *testing.T) {
	list := sampleAssets()

	require.Equal(t, list, Filter(list, ViewAll))
	require.Equal(t, list, Filter(list, ViewByCategory("Checkpoints")))
}

func TestApplyFavoriteToggleResult_RemovesUnfavoritedUnderFavoritesView(t *testing.T) {
	list := Filter(sampleAssets(), ViewFavorites)

	got := ApplyFavoriteToggleResult(list, Asset{ID: 3, Name: "C", IsFavorite: false}, ViewFavorites)

	require.Len(t, got, len(list)-1)
	for _, a := range got {
		require.NotEqualValues(t, 3, a.ID)
	}
	// Remaining elements untouched and in order.
	require.EqualValues(t, 1, got[0].ID)
}

func TestApplyFavoriteToggleResult_ReplacesInPlaceOtherwise(t *testing.T) {
	list := sampleAssets()
	updated := Asset{ID: 2, Name: "B renamed", IsFavorite: true}

	got := ApplyFavoriteToggleResult(list, updated, ViewAll)

	require.Len(t, got, len(list))
	require.Equal(t, updated, got[1])
	require.EqualValues(t, 1, got[0].ID)
	require.EqualValues(t, 3, got[2].ID)
}

func TestApplyFavoriteToggleResult_StillFavoriteUnderFavoritesViewReplaces(t *testing.T) {
	list := Filter(sampleAssets(), ViewFavorites)
	updated := Asset{ID: 1, Name: "A renamed", IsFavorite: true}

	got := ApplyFavoriteToggleResult(list, updated, ViewFavorites)

	require.Len(t, got, len(list))
	require.Equal(t, "A renamed", got[0].Name)
}

func TestApplyFavoriteToggleResult_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	list := sampleAssets()

	got := ApplyFavoriteToggleResult(list, Asset{ID: 99, IsFavorite: true}, ViewAll)

	require.Equal(t, list, got)
}

func TestStore_ApplyFavorite_ReportsRemoval(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(Filter(sampleAssets(), ViewFavorites))

	removed := store.ApplyFavorite(Asset{ID: 3, IsFavorite: false}, ViewFavorites)

	require.True(t, removed)
	require.Len(t, store.Snapshot(), 1)

	removed = store.ApplyFavorite(Asset{ID: 1, IsFavorite: true}, ViewFavorites)
	require.False(t, removed)
	require.Len(t, store.Snapshot(), 1)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleAssets())

	snap := store.Snapshot()
	snap[0].Name = "mutated"

	fresh, ok := store.Get(1)
	require.True(t, ok)
	require.Equal(t, "A", fresh.Name)
}

func TestStore_InsertReplaceRemove(t *testing.T) {
	store := NewStore()
	store.Insert(Asset{ID: 1, Name: "A"})
	store.Insert(Asset{ID: 2, Name: "B"})

	store.Replace(Asset{ID: 2, Name: "B2"})
	got, ok := store.Get(2)
	require.True(t, ok)
	require.Equal(t, "B2", got.Name)

	require.True(t, store.Remove(1))
	require.False(t, store.Remove(1))
	require.Len(t, store.Snapshot(), 1)
}

func TestSplitList_TrimsElements(t *testing.T) {
	require.Equal(t, []string{"anime", "style", "sdxl"}, SplitList("anime, style ,sdxl"))
}

func TestSplitList_EmptyAndWhitespace(t *testing.T) {
	require.Nil(t, SplitList(""))
	require.Nil(t, SplitList("   "))
}

func TestSplitList_NoEscaping(t *testing.T) {
	// A literal comma inside an element is indistinguishable from a
	// separator; this is the documented wire contract.
	require.Equal(t, []string{"a", "b"}, SplitList("a,b"))
	require.Equal(t, []string{"lora:foo", "0.8"}, SplitList("lora:foo,0.8"))
}

func TestParseView(t *testing.T) {
	require.Equal(t, ViewAll, ParseView(""))
	require.Equal(t, ViewAll, ParseView("all"))
	require.Equal(t, ViewFavorites, ParseView("favorites"))
	require.Equal(t, ViewByCategory("LoRA"), ParseView("by-category:LoRA"))
	require.Equal(t, ViewAll, ParseView("something-else"))
}

func TestViewMode_FavoritesOnly(t *testing.T) {
	require.True(t, ViewFavorites.FavoritesOnly())
	require.True(t, ViewByCategory("Favorites").FavoritesOnly())
	require.False(t, ViewAll.FavoritesOnly())
	require.False(t, ViewByCategory("LoRA").FavoritesOnly())
}
