package ui

// Package ui contains the Fyne shell of the catalog browser. It renders the
// session state (header, category sidebar, video list, detail view, sign-in
// dialogs, preferences) and forwards every user action to session intents.
// All UI strings are resolved through the session translator.
