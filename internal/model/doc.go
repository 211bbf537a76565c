package model

// Package model defines domain data structures used across the app: catalog
// videos, user profiles, persisted preferences, the playlist set, and the
// view state. Values are designed to be copied and compared; mutation goes
// through explicit methods that return new values.
