package filter

import (
	"github.com/ytget/catalog-browser/internal/model"
)

// Criteria are the inputs a user controls
type Criteria struct {
	Query    string
	Category model.Category
}

// Apply derives the visible videos. The base set is the playlist for the
// playlist pseudo-category, otherwise the catalog narrowed to the selected
// tag. A non-empty query then keeps entries whose title or description
// contains it, ignoring case.
func Apply(catalog []model.Video, criteria Criteria, playlist model.Playlist) []model.Video {
	var base []model.Video
	switch criteria.Category.Kind {
	case model.CategoryMyPlaylist:
		base = playlist.Videos()
	case model.CategoryTag:
		for _, v := range catalog {
			if v.Category == criteria.Category.Tag {
				base = append(base, v)
			}
		}
	default:
		base = catalog
	}

	visible := make([]model.Video, 0, len(base))
	for _, v := range base {
		if v.Matches(criteria.Query) {
			visible = append(visible, v)
		}
	}
	return visible
}
