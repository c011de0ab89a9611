// Package main is the entry point for the tasklist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexrayosb/CRUD-TodoList/internal/backend/rest"
	"github.com/alexrayosb/CRUD-TodoList/internal/cli"
	"github.com/alexrayosb/CRUD-TodoList/internal/commands"
	"github.com/alexrayosb/CRUD-TodoList/internal/config"
	"github.com/alexrayosb/CRUD-TodoList/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create service factory
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return rest.New(cfg), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
