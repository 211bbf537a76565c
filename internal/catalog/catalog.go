package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/ytget/catalog-browser/internal/model"
)

//go:embed data/catalog.json
var defaultCatalog []byte

var (
	ErrEmptyCatalog = errors.New("catalog has no videos")
	ErrDuplicateID  = errors.New("duplicate video id")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is the fixed, ordered collection of videos available for browsing
type Catalog struct {
	videos     []model.Video
	categories []string
}

// New validates videos and builds a catalog. Order is kept as given.
func New(videos []model.Video) (*Catalog, error) {
	if len(videos) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[int]struct{}, len(videos))
	seenCategory := make(map[string]struct{})
	c := &Catalog{videos: make([]model.Video, 0, len(videos))}

	for i, video := range videos {
		if err := validate.Struct(video); err != nil {
			return nil, fmt.Errorf("invalid video at index %d: %w", i, err)
		}
		if _, dup := seen[video.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, video.ID)
		}
		seen[video.ID] = struct{}{}

		if _, ok := seenCategory[video.Category]; !ok {
			seenCategory[video.Category] = struct{}{}
			c.categories = append(c.categories, video.Category)
		}
		c.videos = append(c.videos, video)
	}

	return c, nil
}

// Load reads a JSON array of videos
func Load(r io.Reader) (*Catalog, error) {
	var videos []model.Video
	if err := json.NewDecoder(r).Decode(&videos); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(videos)
}

// LoadFile reads a catalog from a JSON file
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the catalog bundled with the app
func Default() (*Catalog, error) {
	var videos []model.Video
	if err := json.Unmarshal(defaultCatalog, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode bundled catalog: %w", err)
	}
	return New(videos)
}

// Videos returns a copy of all videos in catalog order
func (c *Catalog) Videos() []model.Video {
	out := make([]model.Video, len(c.videos))
	copy(out, c.videos)
	return out
}

// Categories returns the distinct category tags in first-seen order
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Video returns the video with the given ID
func (c *Catalog) Video(id int) (model.Video, bool) {
	for _, v := range c.videos {
		if v.ID == id {
			return v, true
		}
	}
	return model.Video{}, false
}

// Len returns the number of videos
func (c *Catalog) Len() int {
	return len(c.videos)
}
