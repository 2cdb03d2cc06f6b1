package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a scramble ID does not exist in the archive.
var ErrNotFound = errors.New("storage: scramble not found")

// Scramble is one archived scramble: the full move sequence plus the seed
// and representation it was produced with, so it can be replayed exactly.
type Scramble struct {
	ScrambleID     string
	CreatedAt      time.Time
	Representation string
	MoveCount      int
	Seed           *int64
	Moves          string
	Notes          *string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Save archives a scramble and returns its generated ID.
func (r *ScrambleRepository) Save(representation, moves string, moveCount int, seed *int64, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, representation, move_count, seed, moves, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), representation, moveCount, seed, moves, notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to save scramble: %w", err)
	}

	return id, nil
}

// Get returns the scramble with the given ID.
func (r *ScrambleRepository) Get(id string) (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, created_at, representation, move_count, seed, moves, notes
		FROM scrambles WHERE scramble_id = ?
	`, id)
	return scanScramble(row)
}

// Last returns the most recently archived scramble.
func (r *ScrambleRepository) Last() (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, created_at, representation, move_count, seed, moves, notes
		FROM scrambles ORDER BY rowid DESC LIMIT 1
	`)
	return scanScramble(row)
}

// List returns up to limit scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, representation, move_count, seed, moves, notes
		FROM scrambles ORDER BY rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var out []Scramble
	for rows.Next() {
		var s Scramble
		var createdAt string
		if err := rows.Scan(&s.ScrambleID, &createdAt, &s.Representation, &s.MoveCount, &s.Seed, &s.Moves, &s.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scramble timestamp: %w", err)
		}
		s.CreatedAt = t
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a scramble from the archive.
func (r *ScrambleRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanScramble(row *sql.Row) (*Scramble, error) {
	var s Scramble
	var createdAt string
	err := row.Scan(&s.ScrambleID, &createdAt, &s.Representation, &s.MoveCount, &s.Seed, &s.Moves, &s.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scramble: %w", err)
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scramble timestamp: %w", err)
	}
	s.CreatedAt = t
	return &s, nil
}
