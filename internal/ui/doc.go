package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the input form to the job service, renders the relayed process log,
// and reflects job lifecycle transitions in the controls. All UI strings are
// localized via Localization.
