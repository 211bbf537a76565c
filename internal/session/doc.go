package session

// Package session holds the single state container of the browser. UI code
// reads state through accessors and changes it through intent methods; the
// session persists preferences, playlist and identity through config.Settings
// and recomputes the visible videos through a debounced filter pipeline.
