package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/catalog-browser/internal/model"
)

func ids(videos []model.Video) []int {
	out := make([]int, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	catalog := []model.Video{
		{ID: 1, Category: "music", Title: "Jazz Night"},
		{ID: 2, Category: "sports", Title: "Finals"},
	}
	onlyFinals := model.NewPlaylist(catalog[1])

	tests := []struct {
		name     string
		criteria Criteria
		playlist model.Playlist
		expected []int
	}{
		{
			name:     "no category no query shows everything",
			criteria: Criteria{Category: model.AllCategories()},
			expected: []int{1, 2},
		},
		{
			name:     "category narrows the catalog",
			criteria: Criteria{Category: model.TagCategory("sports")},
			expected: []int{2},
		},
		{
			name:     "query ignores case",
			criteria: Criteria{Query: "jazz", Category: model.AllCategories()},
			expected: []int{1},
		},
		{
			name:     "playlist replaces the catalog",
			criteria: Criteria{Category: model.MyPlaylistCategory()},
			playlist: onlyFinals,
			expected: []int{2},
		},
		{
			name:     "query applies inside playlist",
			criteria: Criteria{Query: "jazz", Category: model.MyPlaylistCategory()},
			playlist: onlyFinals,
			expected: []int{},
		},
		{
			name:     "category and query combine",
			criteria: Criteria{Query: "FIN", Category: model.TagCategory("sports")},
			expected: []int{2},
		},
		{
			name:     "unknown category yields nothing",
			criteria: Criteria{Category: model.TagCategory("news")},
			expected: []int{},
		},
		{
			name:     "tag spelled like the playlist is an ordinary tag",
			criteria: Criteria{Category: model.TagCategory(model.MyPlaylistLabel)},
			playlist: onlyFinals,
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(catalog, tt.criteria, tt.playlist)))
		})
	}
}

func TestApply_MatchesDescription(t *testing.T) {
	catalog := []model.Video{
		{ID: 1, Title: "Session", Description: "Recorded LIVE at the club"},
		{ID: 2, Title: "Other", Description: "Studio"},
	}

	got := Apply(catalog, Criteria{Query: "live"}, model.NewPlaylist())
	assert.Equal(t, []int{1}, ids(got))
}

func TestApply_DoesNotAliasCatalog(t *testing.T) {
	catalog := []model.Video{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}

	got := Apply(catalog, Criteria{}, model.NewPlaylist())
	got[0].Title = "changed"

	assert.Equal(t, "a", catalog[0].Title)
}
