package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/viewstate"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	byID bool
}

// SetByID makes the reference an ID instead of a row number (for testing).
func (c *RmCmd) SetByID(v bool) {
	c.byID = v
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "tasklist rm [--id] <ref>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args, c.byID)
	if err != nil {
		if err == ErrTaskRefRequired {
			return report(errOut, err)
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	store := viewstate.New(svc, cfg.Log())

	// With an ID there is nothing to resolve; the server decides whether it exists.
	id := ref.ID
	if !ref.ByID {
		task, err := findTask(ctx, store, ref)
		if err != nil {
			return report(errOut, err)
		}
		id = task.ID
	}

	if err := store.Delete(ctx, id); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
