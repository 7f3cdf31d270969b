package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/td0m/checklist/pkg/task"
)

var _ task.Persistor = &SQLite{}

const DefaultTimeout = 2 * time.Second

const createSlots = `CREATE TABLE IF NOT EXISTS slots (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite keeps the slot as one row of a key/value table
type SQLite struct {
	db      *sql.DB
	key     string
	Timeout time.Duration
}

// OpenSQLite opens (and creates if needed) the database at path
func OpenSQLite(path, key string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single writer
	db.SetMaxOpenConns(1)
	s, err := NewSQLite(db, key)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLite uses an already open database
func NewSQLite(db *sql.DB, key string) (*SQLite, error) {
	s := &SQLite{db: db, key: key, Timeout: DefaultTimeout}
	ctx, cancel := s.ctx()
	defer cancel()
	if _, err := db.ExecContext(ctx, createSlots); err != nil {
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return s, nil
}

func (s *SQLite) Save(ts []task.Task) error {
	bs, err := Encode(ts)
	if err != nil {
		return err
	}
	ctx, cancel := s.ctx()
	defer cancel()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.key, string(bs))
	if err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}

func (s *SQLite) Load() ([]task.Task, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %q: %w", s.key, task.ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", s.key, err)
	}
	return Decode([]byte(value))
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) String() string {
	return "sqlite:" + s.key
}

func (s *SQLite) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.Timeout)
}
