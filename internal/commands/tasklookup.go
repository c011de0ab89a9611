package commands

import (
	"context"
	"fmt"

	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/viewstate"
)

// errTaskNotFound marks a reference that does not match the synced list.
type errTaskNotFound struct{ msg string }

func (e errTaskNotFound) Error() string { return e.msg }

// findTask syncs the store and resolves ref against the fresh list.
// A task is only ever acted on after a successful fetch has confirmed it exists.
func findTask(ctx context.Context, store *viewstate.Store, ref TaskRef) (service.Task, error) {
	if err := store.Sync(ctx); err != nil {
		return service.Task{}, err
	}

	if ref.ByID {
		task, ok := store.Lookup(ref.ID)
		if !ok {
			return service.Task{}, errTaskNotFound{fmt.Sprintf("task not found: %s", ref.ID)}
		}
		return task, nil
	}

	task, ok := store.At(ref.Num)
	if !ok {
		return service.Task{}, errTaskNotFound{fmt.Sprintf("task number out of range: %d", ref.Num)}
	}
	return task, nil
}
