package store

import "errors"

// ErrNotFound is returned when an operation names an ID that is not in the list.
var ErrNotFound = errors.New("task not found")

// ErrIDMismatch is returned when a commit has no active edit or targets a
// different task than the one being edited.
var ErrIDMismatch = errors.New("id mismatch")
