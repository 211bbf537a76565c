package model

import (
	"strings"
)

// Video represents a single catalog entry
type Video struct {
	ID           int     `json:"id" validate:"required,gt=0"`
	URL          string  `json:"url" validate:"required"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Category     string  `json:"category" validate:"required"`
}

// Matches reports whether the lower-cased query is a substring of the title or
// description. An empty query matches everything.
func (v Video) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Description), q)
}

// UserProfile is the identity held while logged in
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// IsEmpty reports whether the profile carries no identity at all
func (u UserProfile) IsEmpty() bool {
	return u.ID == "" && u.Name == "" && u.Email == ""
}

// Credentials are whatever the sign-in or sign-up form collected.
// They are carried into the profile and never checked.
type Credentials struct {
	Name     string
	Email    string
	Password string
}
