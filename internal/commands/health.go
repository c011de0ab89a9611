package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/exitcode"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

func init() {
	Register(&HealthCmd{})
}

// HealthCmd checks that the task service is reachable.
type HealthCmd struct{}

func (c *HealthCmd) Name() string       { return "health" }
func (c *HealthCmd) Aliases() []string  { return nil }
func (c *HealthCmd) Synopsis() string   { return "Check the task service" }
func (c *HealthCmd) Usage() string      { return "tasklist health [common flags]" }
func (c *HealthCmd) NeedsService() bool { return true }

func (c *HealthCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HealthCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := svc.Ping(ctx); err != nil {
		cfg.Log().WithError(err).Error("health check failed")
		return report(errOut, err)
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "ok: %s\n", cfg.BaseURL)
	}
	return exitcode.Success
}
