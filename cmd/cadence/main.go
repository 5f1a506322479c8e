package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cadence-sh/cadence/internal/cli"
	"github.com/cadence-sh/cadence/internal/db"
	"github.com/cadence-sh/cadence/internal/repository"
	"github.com/cadence-sh/cadence/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.cadence/cadence.db
	dbPath := os.Getenv("CADENCE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".cadence", "cadence.db")
	}

	logger := newLogger()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	planRepo := repository.NewSQLitePlanRepo(database)
	constraintsRepo := repository.NewSQLiteConstraintsRepo(database)
	bookingRepo := repository.NewSQLiteBookingRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Plans:       service.NewPlanService(planRepo),
		Constraints: service.NewConstraintsService(constraintsRepo),
		Bookings:    service.NewBookingService(bookingRepo),
		Schedule:    service.NewScheduleService(planRepo, constraintsRepo, bookingRepo, sessionRepo, uow, observer),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds the process logger: console format on a terminal, JSON
// otherwise, warn level unless CADENCE_LOG overrides it.
func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level := zerolog.WarnLevel
	if raw := os.Getenv("CADENCE_LOG"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	return logger.Level(level)
}
