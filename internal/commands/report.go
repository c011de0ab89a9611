package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
)

// report prints err and returns the matching exit code.
// Local validation failures are user errors; everything else came from the service.
func report(errOut io.Writer, err error) int {
	var notFound errTaskNotFound
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, ErrTaskRefRequired):
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
