package model

// CategoryKind tells the three kinds of category selection apart
type CategoryKind int

const (
	// CategoryAll selects the whole catalog
	CategoryAll CategoryKind = iota
	// CategoryTag selects catalog entries with a matching category tag
	CategoryTag
	// CategoryMyPlaylist selects the playlist contents instead of the catalog
	CategoryMyPlaylist
)

// MyPlaylistLabel is the display label of the playlist pseudo-category
const MyPlaylistLabel = "my playlist"

// Category is the selected category filter. The playlist pseudo-category is
// its own kind, so a catalog tag spelled "my playlist" stays an ordinary tag.
type Category struct {
	Kind CategoryKind
	Tag  string
}

// AllCategories selects no category
func AllCategories() Category {
	return Category{Kind: CategoryAll}
}

// TagCategory selects one catalog category tag
func TagCategory(tag string) Category {
	return Category{Kind: CategoryTag, Tag: tag}
}

// MyPlaylistCategory selects the playlist pseudo-category
func MyPlaylistCategory() Category {
	return Category{Kind: CategoryMyPlaylist}
}

// IsAll returns true when no category is selected
func (c Category) IsAll() bool {
	return c.Kind == CategoryAll
}

// IsMyPlaylist returns true for the playlist pseudo-category
func (c Category) IsMyPlaylist() bool {
	return c.Kind == CategoryMyPlaylist
}

// String returns a label for the selection
func (c Category) String() string {
	switch c.Kind {
	case CategoryTag:
		return c.Tag
	case CategoryMyPlaylist:
		return MyPlaylistLabel
	default:
		return "all"
	}
}
