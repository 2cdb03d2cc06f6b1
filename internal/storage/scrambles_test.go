package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cubekit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var version int
	require.NoError(t, db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version))
	assert.Equal(t, 1, version)

	// Reopening an already-migrated database is a no-op.
	db2, err := Open(db.Path())
	require.NoError(t, err)
	defer db2.Close()
}

func TestScrambleSaveAndGet(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	seed := int64(42)
	id, err := repo.Save("bitboard", "R U R' U' F2", 5, &seed, "warmup")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, s.ScrambleID)
	assert.Equal(t, "bitboard", s.Representation)
	assert.Equal(t, "R U R' U' F2", s.Moves)
	assert.Equal(t, 5, s.MoveCount)
	require.NotNil(t, s.Seed)
	assert.Equal(t, seed, *s.Seed)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "warmup", *s.Notes)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestScrambleOptionalFields(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	id, err := repo.Save("facelet", "D2 B'", 2, nil, "")
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Nil(t, s.Seed)
	assert.Nil(t, s.Notes)
}

func TestScrambleGetMissing(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	_, err := repo.Get("no-such-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestScrambleLastAndList(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	var lastID string
	for i := 0; i < 3; i++ {
		id, err := repo.Save("flat", "R", 1, nil, "")
		require.NoError(t, err)
		lastID = id
	}

	last, err := repo.Last()
	require.NoError(t, err)
	assert.Equal(t, lastID, last.ScrambleID)

	list, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, lastID, list[0].ScrambleID)
}

func TestScrambleDelete(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	id, err := repo.Save("facelet", "U2", 1, nil, "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))
	_, err = repo.Get(id)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.True(t, errors.Is(repo.Delete(id), ErrNotFound))
}
