package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/catalog-browser/internal/model"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 8, c.Len())
	assert.Equal(t, []string{"music", "sports", "travel", "education"}, c.Categories())

	v, ok := c.Video(1)
	require.True(t, ok)
	assert.Equal(t, "Jazz Night", v.Title)
}

func TestNew(t *testing.T) {
	valid := model.Video{ID: 1, URL: "https://v/1", Title: "One", Category: "music"}

	tests := []struct {
		name      string
		videos    []model.Video
		expectErr error
		validator bool
	}{
		{name: "valid", videos: []model.Video{valid}},
		{name: "empty", videos: nil, expectErr: ErrEmptyCatalog},
		{
			name:      "duplicate id",
			videos:    []model.Video{valid, {ID: 1, URL: "https://v/2", Title: "Two", Category: "music"}},
			expectErr: ErrDuplicateID,
		},
		{
			name:      "missing title",
			videos:    []model.Video{{ID: 2, URL: "https://v/2", Category: "music"}},
			validator: true,
		},
		{
			name:      "non-positive id",
			videos:    []model.Video{{ID: -1, URL: "https://v/2", Title: "Two", Category: "music"}},
			validator: true,
		},
		{
			name:      "negative price",
			videos:    []model.Video{{ID: 2, URL: "https://v/2", Title: "Two", Category: "music", Price: -1}},
			validator: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.videos)
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.validator:
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			default:
				require.NoError(t, err)
				assert.Equal(t, len(tt.videos), c.Len())
			}
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(`[
		{"id": 2, "url": "u2", "title": "Finals", "category": "sports"},
		{"id": 1, "url": "u1", "title": "Jazz Night", "category": "music"}
	]`))
	require.NoError(t, err)

	videos := c.Videos()
	assert.Equal(t, 2, videos[0].ID, "order is kept as given")
	assert.Equal(t, []string{"sports", "music"}, c.Categories())

	_, err = Load(strings.NewReader(`{"id": 1}`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "url": "u", "title": "t", "category": "c"}]`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCatalog_VideosIsACopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	videos := c.Videos()
	videos[0].Title = "changed"

	v, _ := c.Video(videos[0].ID)
	assert.Equal(t, "Jazz Night", v.Title)
}
