package persistence

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies the embedded SQL migrations in filename order.
func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}

	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		logger.Info("applying migration", zap.String("file", name))
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return nil
}

// SeedDemo inserts a handful of demo students and courses when the store is
// empty, so a fresh process answers list requests with data.
func SeedDemo(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return fmt.Errorf("count students: %w", err)
	}
	if count > 0 {
		return nil
	}

	const seed = `
        INSERT INTO students (name, email) VALUES
            ('Ada Lovelace', 'ada@example.edu'),
            ('Alan Turing', 'alan@example.edu'),
            ('Grace Hopper', 'grace@example.edu');
        INSERT INTO courses (title, credits) VALUES
            ('Databases', 5),
            ('Distributed Systems', 6),
            ('Compilers', 4);`
	if _, err := db.ExecContext(ctx, seed); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	logger.Info("seeded demo records")
	return nil
}
