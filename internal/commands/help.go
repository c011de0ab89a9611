package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tasklist help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, usageText)
	fmt.Fprintln(out, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-18s %s\n", name, cmd.Synopsis())
	}
	fmt.Fprint(out, flagsText)
	return exitcode.Success
}

const usageText = `Usage:
  tasklist                                        List all tasks
  tasklist list [common flags]                    List all tasks
  tasklist add [common flags] [--description <text>] <title...>
  tasklist toggle [common flags] [--id] <ref>     Flip pending/completed
  tasklist rm [common flags] [--id] <ref>         Delete a task
  tasklist ui [common flags]                      Interactive task list
  tasklist health [common flags]                  Check the task service
  tasklist help
  tasklist version

A <ref> is the row number printed by list, or the task ID with --id.
`

const flagsText = `
Common flags:
  --config <dir>   Override config directory
  --url <url>      Task service base URL (default http://localhost:8080)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
