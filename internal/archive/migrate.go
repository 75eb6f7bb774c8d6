package archive

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/matheus3301/chatters/internal/archive/migrations"
	"go.uber.org/zap"
)

// ErrDirtySchema means an earlier upgrade stopped halfway. The archive has
// to be repaired or removed by hand.
var ErrDirtySchema = errors.New("archive schema is dirty")

// Schema is the archive's schema version before and after an upgrade.
type Schema struct {
	From uint
	To   uint
}

func (s Schema) Upgraded() bool { return s.From != s.To }

// UpgradeSchema applies the embedded migrations the archive has not seen.
// A fresh file starts at version 0.
func (db *DB) UpgradeSchema(logger *zap.Logger) (Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return Schema{}, fmt.Errorf("embedded schema: %w", err)
	}
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return Schema{}, fmt.Errorf("schema driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return Schema{}, fmt.Errorf("schema migrator: %w", err)
	}
	m.Log = migrateLog{logger.Named("schema")}

	var s Schema
	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return Schema{}, fmt.Errorf("schema version: %w", err)
	case dirty:
		return Schema{From: from, To: from}, fmt.Errorf("%s at version %d: %w", db.path, from, ErrDirtySchema)
	default:
		s.From = from
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return s, fmt.Errorf("upgrade %s from version %d: %w", db.path, s.From, err)
	}
	to, _, err := m.Version()
	if err != nil {
		return s, fmt.Errorf("schema version: %w", err)
	}
	s.To = to
	return s, nil
}

// migrateLog sends golang-migrate's progress lines to zap at debug level.
type migrateLog struct{ l *zap.Logger }

func (m migrateLog) Printf(format string, v ...any) {
	m.l.Debug(fmt.Sprintf(format, v...))
}

func (m migrateLog) Verbose() bool { return false }
