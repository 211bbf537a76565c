package filter

// Package filter derives the visible videos from the catalog, the playlist and
// the search criteria, and debounces bursts of criteria changes.
