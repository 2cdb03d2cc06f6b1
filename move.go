package cubekit

import (
	"fmt"
	"strings"
)

// Move is one of the 18 legal face moves: for each face a clockwise quarter
// turn, its inverse (prime) and a half turn. Moves generate the cube group;
// applying a move and then its inverse always restores the previous state.
type Move int

const (
	L Move = iota
	LPrime
	L2
	R
	RPrime
	R2
	U
	UPrime
	U2
	D
	DPrime
	D2
	F
	FPrime
	F2
	B
	BPrime
	B2

	// NumMoves is the size of the move alphabet.
	NumMoves = 18
)

// AllMoves lists every move in enum order.
var AllMoves = [NumMoves]Move{
	L, LPrime, L2,
	R, RPrime, R2,
	U, UPrime, U2,
	D, DPrime, D2,
	F, FPrime, F2,
	B, BPrime, B2,
}

var moveNames = [NumMoves]string{
	"L", "L'", "L2",
	"R", "R'", "R2",
	"U", "U'", "U2",
	"D", "D'", "D2",
	"F", "F'", "F2",
	"B", "B'", "B2",
}

// Name returns the standard notation for the move: R, R', R2, ...
func (m Move) Name() string {
	if m < 0 || m >= NumMoves {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

func (m Move) String() string {
	return m.Name()
}

// Face returns the face the move turns.
func (m Move) Face() Face {
	switch m / 3 {
	case 0:
		return Left
	case 1:
		return Right
	case 2:
		return Up
	case 3:
		return Down
	case 4:
		return Front
	default:
		return Back
	}
}

// Inverse returns the move that undoes m: a quarter turn maps to its prime
// and back, a half turn is its own inverse.
func (m Move) Inverse() Move {
	switch m % 3 {
	case 0: // quarter turn -> prime
		return m + 1
	case 1: // prime -> quarter turn
		return m - 1
	default: // half turn
		return m
	}
}

// ParseMove parses standard notation (R, R', R2, case-insensitive) into a
// Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNotation
	}

	var base Move
	switch s[0] {
	case 'L', 'l':
		base = L
	case 'R', 'r':
		base = R
	case 'U', 'u':
		base = U
	case 'D', 'd':
		base = D
	case 'F', 'f':
		base = F
	case 'B', 'b':
		base = B
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	switch s[1:] {
	case "":
		return base, nil
	case "'", "`":
		return base + 1, nil
	case "2", "2'", "2`":
		return base + 2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
}

// ParseMoves parses a whitespace-separated move sequence, e.g. "R U R' U'".
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Name()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: each move inverted,
// in reverse order.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
