package persist

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/td0m/checklist/pkg/task"
)

func setupSQLite(t *testing.T, key string) *SQLite {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	s, err := NewSQLite(db, key)
	require.NoError(t, err)
	return s
}

func TestSQLite_SaveLoad(t *testing.T) {
	s := setupSQLite(t, "tasks")

	require.NoError(t, s.Save(sample))
	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sample, tasks)

	require.NoError(t, s.Save(sample[2:]))
	tasks, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, sample[2:], tasks)
}

func TestSQLite_EmptySlot(t *testing.T) {
	s := setupSQLite(t, "tasks")

	_, err := s.Load()
	assert.ErrorIs(t, err, task.ErrNoData)
}

func TestSQLite_KeysAreIndependent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	a, err := NewSQLite(db, "a")
	require.NoError(t, err)
	b, err := NewSQLite(db, "b")
	require.NoError(t, err)

	require.NoError(t, a.Save(sample))
	_, err = b.Load()
	assert.ErrorIs(t, err, task.ErrNoData)
}

func TestOpenSQLite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tasks.db")

	s, err := OpenSQLite(path, "tasks")
	require.NoError(t, err)
	require.NoError(t, s.Save(sample))
	require.NoError(t, s.Close())

	// a new process sees the same tasks
	s, err = OpenSQLite(path, "tasks")
	require.NoError(t, err)
	defer s.Close()

	l := task.Open(s)
	assert.Equal(t, sample, l.Tasks())
}
