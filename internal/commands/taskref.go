package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tasklist/internal/store"
)

// TaskRef is a parsed task reference: either a 1-based display number
// or a raw task ID.
type TaskRef struct {
	Num int      // display number, 0 if ID is set
	ID  store.ID // raw ID, empty if Num is set
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. No args → error: task reference required
// 2. More than one arg → error: unexpected argument: <arg>
// 3. All digits → display number (1-based)
// 4. Anything else → raw task ID, as printed by `list --ids`
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := args[0]
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}
	return TaskRef{ID: store.ID(arg)}, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
