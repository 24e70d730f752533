package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

//go:embed schema
var schemaFS embed.FS

// MigrationFiles lists the embedded .up.sql files for a dialect in execution order.
func MigrationFiles(d Dialect) ([]string, error) {
	dir := path.Join("schema", string(d))
	entries, err := fs.ReadDir(schemaFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations for %s: %w", d, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Migrate runs every embedded migration for the dialect. Statements are written
// to be idempotent so this runs on every start.
func Migrate(ctx context.Context, conn *sql.DB, d Dialect, logger *slog.Logger) error {
	files, err := MigrationFiles(d)
	if err != nil {
		return err
	}

	for _, file := range files {
		stmt, err := schemaFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := conn.ExecContext(ctx, string(stmt)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
		logger.Debug("migration applied", "file", path.Base(file))
	}
	return nil
}
