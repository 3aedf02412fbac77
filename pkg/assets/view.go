package assets

import "strings"

// ViewMode selects which slice of the collection a list request sees.
// Encoded as "all", "favorites", or "by-category:<name>".
type ViewMode struct {
	kind     string
	category string
}

const (
	viewAll        = "all"
	viewFavorites  = "favorites"
	categoryPrefix = "by-category:"
)

var (
	ViewAll       = ViewMode{kind: viewAll}
	ViewFavorites = ViewMode{kind: viewFavorites}
)

func ViewByCategory(name string) ViewMode {
	return ViewMode{kind: "category", category: name}
}

// ParseView maps a raw view string to a ViewMode. Anything unrecognized
// falls back to the unfiltered view.
func ParseView(raw string) ViewMode {
	switch {
	case raw == "" || raw == viewAll:
		return ViewAll
	case raw == viewFavorites:
		return ViewFavorites
	case strings.HasPrefix(raw, categoryPrefix):
		return ViewByCategory(strings.TrimPrefix(raw, categoryPrefix))
	default:
		return ViewAll
	}
}

func (v ViewMode) String() string {
	switch v.kind {
	case "category":
		return categoryPrefix + v.category
	case viewFavorites:
		return viewFavorites
	default:
		return viewAll
	}
}

// FavoritesOnly reports whether this is a favorites-derived view: the
// favorites view itself or the special "Favorites" category. An asset whose
// favorite flag drops to false no longer belongs in such a view.
func (v ViewMode) FavoritesOnly() bool {
	return v.kind == viewFavorites || (v.kind == "category" && v.category == "Favorites")
}
