package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var migrationPath, databaseUrl string
	flag.StringVar(&databaseUrl, "database_url", "", "database connection URL")
	flag.StringVar(&migrationPath, "migration-path", "./migrations", "path to migration files")
	flag.Parse()

	if databaseUrl == "" {
		databaseUrl = os.Getenv("DATABASE_URL")
	}
	if databaseUrl == "" {
		panic("database URL is required")
	}

	m, err := migrate.New("file://"+migrationPath, databaseUrl)
	if err != nil {
		panic(err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		panic(err)
	}

	fmt.Println("Migrations applied")
}
