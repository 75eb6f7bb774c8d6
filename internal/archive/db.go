// Package archive persists the conversation store in SQLite. It is optional:
// the store stays authoritative and the archive only replays into it at
// startup.
package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB is an open archive file. The journal is its only writer; restore and
// search read it.
type DB struct {
	*sql.DB
	path string
}

// archivePragmas keep readers off the journal's back and let deleting a
// conversation cascade to its messages.
var archivePragmas = url.Values{
	"_journal_mode": {"WAL"},
	"_busy_timeout": {"5000"},
	"_foreign_keys": {"on"},
}

// Open opens the archive at path, creating the file and its directory on
// first use.
func Open(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("archive path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("archive directory: %w", err)
	}
	conn, err := sql.Open("sqlite3", path+"?"+archivePragmas.Encode())
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("archive %s unreadable: %w", path, err)
	}
	return &DB{DB: conn, path: path}, nil
}

func (db *DB) Path() string { return db.path }
