package model

import "encoding/json"

// Playlist is the user-curated set of videos. Entries are unique by ID and
// keep insertion order. A Playlist value is never modified in place: Toggle
// returns a new value, so holders of the old one keep seeing the old contents.
type Playlist struct {
	videos []Video
}

// NewPlaylist builds a playlist from videos, dropping repeated IDs after the
// first occurrence
func NewPlaylist(videos ...Video) Playlist {
	p := Playlist{}
	for _, v := range videos {
		if p.Contains(v.ID) {
			continue
		}
		p.videos = append(p.videos, v)
	}
	return p
}

// Toggle removes the video with the same ID if present, otherwise appends it
func (p Playlist) Toggle(video Video) Playlist {
	idx := p.indexOf(video.ID)
	if idx < 0 {
		next := make([]Video, len(p.videos), len(p.videos)+1)
		copy(next, p.videos)
		return Playlist{videos: append(next, video)}
	}

	next := make([]Video, 0, len(p.videos)-1)
	next = append(next, p.videos[:idx]...)
	next = append(next, p.videos[idx+1:]...)
	return Playlist{videos: next}
}

// Contains reports whether a video with the given ID is in the playlist
func (p Playlist) Contains(id int) bool {
	return p.indexOf(id) >= 0
}

// Videos returns a copy of the entries in insertion order
func (p Playlist) Videos() []Video {
	out := make([]Video, len(p.videos))
	copy(out, p.videos)
	return out
}

// Len returns the number of entries
func (p Playlist) Len() int {
	return len(p.videos)
}

// Equal compares two playlists entry by entry
func (p Playlist) Equal(other Playlist) bool {
	if len(p.videos) != len(other.videos) {
		return false
	}
	for i := range p.videos {
		if p.videos[i] != other.videos[i] {
			return false
		}
	}
	return true
}

func (p Playlist) indexOf(id int) int {
	for i, v := range p.videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the playlist as a plain array of videos
func (p Playlist) MarshalJSON() ([]byte, error) {
	if p.videos == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.videos)
}

// UnmarshalJSON decodes an array of videos, keeping the first of any repeated IDs
func (p *Playlist) UnmarshalJSON(data []byte) error {
	var videos []Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return err
	}
	*p = NewPlaylist(videos...)
	return nil
}
