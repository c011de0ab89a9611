package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/output"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/viewstate"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct {
	byID bool
}

// SetByID makes the reference an ID instead of a row number (for testing).
func (c *ToggleCmd) SetByID(v bool) {
	c.byID = v
}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Flip a task between pending and completed" }
func (c *ToggleCmd) Usage() string      { return "tasklist toggle [--id] <ref>" }
func (c *ToggleCmd) NeedsService() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args, c.byID)
	if err != nil {
		if err == ErrTaskRefRequired {
			return report(errOut, err)
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	store := viewstate.New(svc, cfg.Log())
	task, err := findTask(ctx, store, ref)
	if err != nil {
		return report(errOut, err)
	}

	if err := store.Toggle(ctx, task); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		if updated, ok := store.Lookup(task.ID); ok {
			fmt.Fprintf(out, "ok: %s\n", output.Status(updated))
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}
