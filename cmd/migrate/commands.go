package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"easyref/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type options struct {
	databaseURL string
	source      string
	steps       int
}

var opts options

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the easyref database migrations",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database", "", "Database connection URL (default built from DB_* variables)")
	cmd.PersistentFlags().StringVar(&opts.source, "source", "db/migrations", "Path to migrations directory")
	cmd.PersistentFlags().IntVar(&opts.steps, "steps", 0, "Number of migrations to apply, 0 applies all")

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run("UP", func(m *migrate.Migrate) error {
				if opts.steps > 0 {
					return m.Steps(opts.steps)
				}
				return m.Up()
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Run down migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run("DOWN", func(m *migrate.Migrate) error {
				if opts.steps > 0 {
					return m.Steps(-opts.steps)
				}
				return m.Down()
			})
		},
	}
}

// databaseDSN falls back to the DB_* variables when no --database is given
func databaseDSN() (string, error) {
	if opts.databaseURL != "" {
		return opts.databaseURL, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("--database not set and config could not load: %w", err)
	}
	return cfg.Database.DSN(), nil
}

func run(direction string, apply func(m *migrate.Migrate) error) error {
	dsn, err := databaseDSN()
	if err != nil {
		return err
	}

	//Open database connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.source), "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	log.Printf("running %s migrations...", direction)
	if err := apply(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run %s migrations: %w", direction, err)
	}
	log.Printf("%s migrations completed successfully", direction)
	return nil
}
