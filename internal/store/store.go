package store

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// maxIDAttempts bounds how often Add redraws an ID that was already issued.
const maxIDAttempts = 16

// IDFunc generates candidate task IDs.
type IDFunc func() ID

// NewUUID is the default IDFunc.
func NewUUID() ID {
	return ID(uuid.NewString())
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the ID generator.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Snapshot is a point-in-time copy of the store contents.
type Snapshot struct {
	Tasks     []Task
	EditingID ID // empty when no task is being edited
}

// Editing returns the record under edit, if any.
func (s Snapshot) Editing() (Task, bool) {
	if s.EditingID == "" {
		return Task{}, false
	}
	for _, t := range s.Tasks {
		if t.ID == s.EditingID {
			return t, true
		}
	}
	return Task{}, false
}

// Observer is called after every change to the store.
type Observer func(Snapshot)

type subscription struct {
	id int
	fn Observer
}

// Store is an ordered task list with an optional task selected for editing.
// The editing ID, when set, always names a task in the list.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Store struct {
	tasks     []Task
	editingID ID
	issued    map[ID]struct{}
	newID     IDFunc

	observers []subscription
	nextSubID int
}

// New creates an empty store with no active edit.
func New(opts ...Option) *Store {
	s := &Store{
		issued: make(map[ID]struct{}),
		newID:  NewUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new task and returns it. Empty labels are allowed.
func (s *Store) Add(label string, icon IconKind) Task {
	t := Task{ID: s.generateID(), Label: label, Icon: icon}
	s.tasks = append(s.tasks, t)
	s.notify()
	return t
}

// Remove deletes the task with the given ID, keeping the order of the rest.
// If that task was being edited, the edit ends. Unknown IDs are ignored.
func (s *Store) Remove(id ID) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	if s.editingID == id {
		s.editingID = ""
	}
	s.notify()
}

// SelectForEdit marks the task with the given ID as being edited,
// replacing any previous selection.
func (s *Store) SelectForEdit(id ID) error {
	if s.indexOf(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.editingID = id
	s.notify()
	return nil
}

// CurrentEdit returns the task being edited.
func (s *Store) CurrentEdit() (Task, bool) {
	if s.editingID == "" {
		return Task{}, false
	}
	i := s.indexOf(s.editingID)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// EditingID returns the ID of the task being edited, or "" if none.
func (s *Store) EditingID() ID {
	return s.editingID
}

// CommitEdit replaces the task being edited with updated, in place.
// updated must carry the ID of the task being edited. The edit stays
// active; call CancelEdit to end it.
func (s *Store) CommitEdit(updated Task) error {
	if s.editingID == "" {
		return fmt.Errorf("%w: no task is being edited", ErrIDMismatch)
	}
	if updated.ID != s.editingID {
		return fmt.Errorf("%w: editing %s, got %s", ErrIDMismatch, s.editingID, updated.ID)
	}
	i := s.indexOf(updated.ID)
	if i < 0 {
		// Unreachable while Remove keeps editingID consistent.
		return fmt.Errorf("%w: %s", ErrNotFound, updated.ID)
	}
	s.tasks[i] = updated
	s.notify()
	return nil
}

// CancelEdit ends the active edit. It is a no-op when nothing is being edited.
func (s *Store) CancelEdit() {
	if s.editingID == "" {
		return
	}
	s.editingID = ""
	s.notify()
}

// Tasks returns a copy of the task list in display order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given ID.
func (s *Store) Get(id ID) (Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Snapshot returns a copy of the list and the editing ID.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Tasks: s.Tasks(), EditingID: s.editingID}
}

// Subscribe registers fn to be called synchronously after each change.
// Failed operations and no-ops do not notify. The returned function
// removes the observer.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	return func() {
		s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	// Copy so observers may unsubscribe while being notified.
	for _, sub := range slices.Clone(s.observers) {
		sub.fn(snap)
	}
}

func (s *Store) indexOf(id ID) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) generateID() ID {
	for range maxIDAttempts {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, used := s.issued[id]; used {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
	panic("store: id generator keeps returning empty or previously issued ids")
}
