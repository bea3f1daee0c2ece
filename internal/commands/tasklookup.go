package commands

import (
	"errors"
	"fmt"

	"tasklist/internal/store"
)

// ErrOutOfRange is returned when a display number has no task.
var ErrOutOfRange = errors.New("task number out of range")

// resolveTaskRef maps a reference to a task ID using the current display order.
// Raw IDs are returned as given; the store decides whether they exist.
func resolveTaskRef(st *store.Store, ref TaskRef) (store.ID, error) {
	if ref.ID != "" {
		return ref.ID, nil
	}
	tasks := st.Tasks()
	if ref.Num < 1 || ref.Num > len(tasks) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, ref.Num)
	}
	return tasks[ref.Num-1].ID, nil
}

// displayNumber returns the 1-based position of id, or 0 if absent.
func displayNumber(st *store.Store, id store.ID) int {
	for i, t := range st.Tasks() {
		if t.ID == id {
			return i + 1
		}
	}
	return 0
}
