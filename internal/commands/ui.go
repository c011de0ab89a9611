package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
	"github.com/alexrayosb/CRUD-TodoList/internal/tui"
	"github.com/alexrayosb/CRUD-TodoList/internal/viewstate"
)

func init() {
	Register(&UICmd{})
}

// UICmd opens the interactive task list.
type UICmd struct {
	// In is the keyboard source; nil means os.Stdin.
	In io.Reader
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Open the interactive task list" }
func (c *UICmd) Usage() string      { return "tasklist ui [common flags]" }
func (c *UICmd) NeedsService() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	in := c.In
	if in == nil {
		in = os.Stdin
	}

	store := viewstate.New(svc, cfg.Log())
	if err := tui.Run(ctx, store, in, out); err != nil {
		cfg.Log().WithError(err).Error("terminal ui failed")
		fmt.Fprintf(errOut, "error: terminal: %v\n", err)
		return exitcode.TerminalError
	}
	return exitcode.Success
}
