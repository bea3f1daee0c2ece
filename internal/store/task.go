// Package store holds the in-memory task list and its edit selection.
package store

import (
	"fmt"
	"strings"
)

// ID identifies a task. IDs are assigned by the store and never reused.
type ID string

// IconKind is the visual category of a task.
type IconKind int

const (
	Square IconKind = iota
	Done
	Event
	Privacy
	Trash
)

// DefaultIcon is the icon used when none is given.
const DefaultIcon = Square

var iconNames = [...]string{
	Square:  "square",
	Done:    "done",
	Event:   "event",
	Privacy: "privacy",
	Trash:   "trash",
}

var iconDescriptions = [...]string{
	Square:  "SquareIcon",
	Done:    "DoneIcon",
	Event:   "EventIcon",
	Privacy: "PrivacyIcon",
	Trash:   "TrashIcon",
}

// IconKinds returns every icon kind in declaration order.
func IconKinds() []IconKind {
	return []IconKind{Square, Done, Event, Privacy, Trash}
}

// Valid reports whether k is one of the declared kinds.
func (k IconKind) Valid() bool {
	return k >= Square && k <= Trash
}

// String returns the lower-case name of the kind.
func (k IconKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("IconKind(%d)", int(k))
	}
	return iconNames[k]
}

// Description returns the accessibility description of the kind.
func (k IconKind) Description() string {
	if !k.Valid() {
		return ""
	}
	return iconDescriptions[k]
}

// ParseIconKind parses a kind name (case-insensitive, surrounding spaces ignored).
func ParseIconKind(s string) (IconKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range IconKinds() {
		if iconNames[k] == name {
			return k, nil
		}
	}
	return DefaultIcon, fmt.Errorf("unknown icon: %s", s)
}

// Task is a single task record. It is a value: edits produce a new Task
// and leave existing copies untouched.
type Task struct {
	ID    ID
	Label string
	Icon  IconKind
}

// WithLabel returns a copy of t with the label replaced.
func (t Task) WithLabel(label string) Task {
	t.Label = label
	return t
}

// WithIcon returns a copy of t with the icon replaced.
func (t Task) WithIcon(icon IconKind) Task {
	t.Icon = icon
	return t
}
