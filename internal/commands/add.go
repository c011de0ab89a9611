package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/viewstate"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(d string) {
	c.description = d
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "tasklist add [--description <text>] <title...>"
}
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Join args to form title; the store trims and rejects blank titles
	title := strings.Join(args, " ")

	store := viewstate.New(svc, cfg.Log())
	if err := store.Create(ctx, title, c.description); err != nil {
		if errors.Is(err, viewstate.ErrTitleRequired) {
			fmt.Fprintln(errOut, "error: title required")
			return exitcode.UserError
		}
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
