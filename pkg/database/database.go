package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bariskaplan/portfolio-hub/pkg/config"
	"github.com/bariskaplan/portfolio-hub/pkg/logger"
)

var DB *sql.DB

// Open opens a SQLite database at the given path with the standard
// connection options (WAL journal, foreign keys enforced).
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Init opens the configured database and applies migrations.
func Init() error {
	var err error

	DB, err = Open(config.AppConfig.Database.Path)
	if err != nil {
		return err
	}

	logger.Info("Database connected successfully")

	if err = RunMigrations(DB, config.AppConfig.Database.MigrationsDir); err != nil {
		return err
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunMigrations executes every .sql file in dir in lexical order.
// Each file is split into individual statements on ';' and the
// statements run sequentially.
func RunMigrations(db *sql.DB, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".sql" {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}

		for _, statement := range strings.Split(string(content), ";") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}
			if _, err := db.Exec(statement); err != nil {
				return err
			}
		}

		logger.Infof("Executed migration: %s", name)
	}

	return nil
}
