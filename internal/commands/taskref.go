package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int            // 1-based row number in the synced list
	ID   service.TaskID // set when ByID is true
	ByID bool           // true if the reference is a server ID
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Without byID, the single argument must be a positive row number as printed by
// `tasklist list`. With byID, the argument is taken verbatim as a server ID.
func ParseTaskRef(args []string, byID bool) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := strings.TrimSpace(args[0])
	if byID {
		return TaskRef{ID: service.ParseID(strings.TrimPrefix(arg, "#")), ByID: true}, nil
	}

	if !isAllDigits(arg) {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	num, err := strconv.Atoi(arg)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	return TaskRef{Num: num}, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
