package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"novabill/internal/config"
)

const usage = `novabill schema migrator

Usage: migrate [-dir PATH] COMMAND

Commands:
  up         apply all pending migrations
  down N     roll back N migrations
  force V    mark version V as applied without running it (dirty recovery)
  version    print the current schema version
`

func main() {
	dir := flag.String("dir", "db/migrations", "migrations directory")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if err := run(*dir, flag.Args()); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(dir string, args []string) error {
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m, err := migrate.New("file://"+dir, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("opening migration source: %w", err)
	}
	defer m.Close()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("schema is up to date")
		return nil

	case "down":
		if len(args) < 2 {
			return errors.New("down requires a step count")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		if err := m.Steps(-n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Printf("rolled back %d migration(s)", n)
		return nil

	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := m.Force(v); err != nil {
			return err
		}
		log.Printf("forced schema version to %d", v)
		return nil

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %v)\n", v, dirty)
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
