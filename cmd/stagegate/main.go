package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/minsukang/stagegate/internal/cli"
	"github.com/minsukang/stagegate/internal/db"
	"github.com/minsukang/stagegate/internal/repository"
	"github.com/minsukang/stagegate/internal/schema"
	"github.com/minsukang/stagegate/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.stagegate/stagegate.db
	dbPath := os.Getenv("STAGEGATE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".stagegate", "stagegate.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository and unit of work
	projectRepo := repository.NewSQLiteProjectRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	registry := schema.Default()

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo),
		Fields:   service.NewFieldService(projectRepo, uow, registry),
		Status:   service.NewStatusService(projectRepo, registry),
		Calendar: service.NewCalendarService(projectRepo, registry),
		Registry: registry,
	}

	// Detect interactive terminal for form and editor entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
