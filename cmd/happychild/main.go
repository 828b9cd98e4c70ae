package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tanudin/Happy-Child/internal/cli"
	"github.com/Tanudin/Happy-Child/internal/db"
	"github.com/Tanudin/Happy-Child/internal/repository"
	"github.com/Tanudin/Happy-Child/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.happychild/happychild.db
	dbPath := os.Getenv("HAPPYCHILD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".happychild", "happychild.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	eventRepo := repository.NewSQLiteEventRepo(database)
	custodyRepo := repository.NewSQLiteCustodyRepo(database)
	childRepo := repository.NewSQLiteChildRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	identity := service.NewIdentityService(profileRepo)

	app := &cli.App{
		Events:   service.NewEventService(eventRepo, childRepo, identity, uow),
		Custody:  service.NewCustodyService(custodyRepo, identity),
		Children: service.NewChildService(childRepo, identity),
		Identity: identity,
	}

	// Detect interactive terminal for the calendar TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
