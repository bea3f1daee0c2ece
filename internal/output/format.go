// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/store"
)

// EditMarker flags the row of the task being edited.
const EditMarker = '*'

// Glyph returns the text glyph shown for an icon kind.
func Glyph(icon store.IconKind) string {
	switch icon {
	case store.Done:
		return "[x]"
	case store.Event:
		return "[e]"
	case store.Privacy:
		return "[p]"
	case store.Trash:
		return "[t]"
	default:
		return "[ ]"
	}
}

// FormatTask formats one task row.
// Format: "{N:>4}{M} {GLYPH} {LABEL}\n" where M is '*' for the edited task, else ' '.
func FormatTask(w io.Writer, num int, task store.Task, editing bool) {
	marker := ' '
	if editing {
		marker = EditMarker
	}
	fmt.Fprintf(w, "%4d%c %s %s\n", num, marker, Glyph(task.Icon), normalizeLabel(task.Label))
}

// FormatTaskWithID formats a task row followed by its ID.
func FormatTaskWithID(w io.Writer, num int, task store.Task, editing bool) {
	marker := ' '
	if editing {
		marker = EditMarker
	}
	fmt.Fprintf(w, "%4d%c %s %s  (%s)\n", num, marker, Glyph(task.Icon), normalizeLabel(task.Label), task.ID)
}

// FormatList formats every task of a snapshot in display order.
// Returns false if there was nothing to print.
func FormatList(w io.Writer, snap store.Snapshot, withIDs bool) bool {
	for i, task := range snap.Tasks {
		editing := task.ID == snap.EditingID
		if withIDs {
			FormatTaskWithID(w, i+1, task, editing)
		} else {
			FormatTask(w, i+1, task, editing)
		}
	}
	return len(snap.Tasks) > 0
}

// FormatIcon formats an icon kind line for the icons command.
func FormatIcon(w io.Writer, icon store.IconKind) {
	fmt.Fprintf(w, "%s  %-8s %s\n", Glyph(icon), icon, icon.Description())
}

// normalizeLabel normalizes a task label for display.
// - Empty or whitespace-only labels become "(untitled)"
// - Newlines are replaced with spaces
func normalizeLabel(label string) string {
	label = strings.ReplaceAll(label, "\r", " ")
	label = strings.ReplaceAll(label, "\n", " ")

	if strings.TrimSpace(label) == "" {
		return "(untitled)"
	}
	return label
}
