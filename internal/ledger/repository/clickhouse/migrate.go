package clickhouse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Direction selects whether Migrate applies or rolls back the schema.
type Direction string

const (
	MigrateUp   Direction = "up"
	MigrateDown Direction = "down"
)

// SchemaVersion is the state of the mirror schema after a migration run.
type SchemaVersion struct {
	Version uint
	Dirty   bool
	Changed bool
}

// Migrate runs every migration file in dir against dsn in the given
// direction. Multi-statement mode is switched on because the schema files
// create several tables each.
func Migrate(dsn, dir string, direction Direction) (SchemaVersion, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("stat migrations dir: %w", err)
	}
	if !info.IsDir() {
		return SchemaVersion{}, fmt.Errorf("%s is not a directory", abs)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(abs), WithMultiStatement(dsn))
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("init migrate: %w", err)
	}

	var apply func() error
	switch direction {
	case MigrateUp:
		apply = m.Up
	case MigrateDown:
		apply = m.Down
	default:
		return SchemaVersion{}, errors.Join(fmt.Errorf("unknown migration direction %q", direction), closeMigrator(m))
	}

	out := SchemaVersion{Changed: true}
	if err := apply(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return SchemaVersion{}, errors.Join(fmt.Errorf("migrate %s: %w", direction, err), closeMigrator(m))
		}
		out.Changed = false
	}

	out.Version, out.Dirty, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return SchemaVersion{}, errors.Join(fmt.Errorf("read schema version: %w", err), closeMigrator(m))
	}
	return out, closeMigrator(m)
}

// WithMultiStatement adds x-multi-statement=true to dsn unless it already
// sets the option.
func WithMultiStatement(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&x-multi-statement=true"
	}
	return dsn + "?x-multi-statement=true"
}

func closeMigrator(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		srcErr = fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		dbErr = fmt.Errorf("close migration database: %w", dbErr)
	}
	return errors.Join(srcErr, dbErr)
}
