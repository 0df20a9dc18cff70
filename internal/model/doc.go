package model

// Package model defines domain data structures used across the app: the job
// request and handle, the job status state machine, and the UI log buffer.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
