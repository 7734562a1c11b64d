package newsletter

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// MigrationFiles contains the SQL schema for every supported dialect, one directory
// per database/sql driver name (postgres, mysql, sqlite3). Each file holds a single
// idempotent statement, so the set can be re-applied on every start.
//
// Operators who prefer an external migration tool can point it at the matching directory:
//
//	source, err := iofs.New(newsletter.MigrationFiles, "migrations/postgres")
//
//go:embed migrations
var MigrationFiles embed.FS

// Migrate applies the embedded schema for driver to db, in file name order.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return NewError(ErrCodeConfiguration, "database handle is required")
	}

	files, err := migrationFiles(driver)
	if err != nil {
		return err
	}

	for _, name := range files {
		body, err := fs.ReadFile(MigrationFiles, name)
		if err != nil {
			return NewErrorWithCause(ErrCodeInternal, fmt.Sprintf("failed to read migration %s", name), err)
		}

		stmt := strings.TrimSpace(string(body))
		if stmt == "" {
			continue
		}

		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return NewErrorWithCause(ErrCodeDatabase, fmt.Sprintf("failed to apply migration %s", path.Base(name)), err)
		}
	}

	return nil
}

func migrationFiles(driver string) ([]string, error) {
	unsupported := NewError(ErrCodeConfiguration, fmt.Sprintf("unsupported database driver %q", driver))
	if driver == "" || strings.ContainsAny(driver, "/.") {
		return nil, unsupported
	}

	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(MigrationFiles, dir)
	if err != nil {
		return nil, unsupported
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		files = append(files, path.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}
