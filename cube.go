// Package cubekit models the state of a 3x3 Rubik's Cube and the group of
// legal moves acting on it, independently of how that state is stored.
//
// The package provides three interchangeable representations (a facelet
// array, a flattened array, and a bit-packed board) behind a single Cube
// contract, so that algorithms built on top - solvers, shufflers, printers -
// can be benchmarked against any encoding without change. All
// representations answer ColorAt, IsSolved and the corner-encoding queries
// identically for the same move sequence.
package cubekit

import "fmt"

// Face identifies one of the six cube faces.
type Face int

const (
	Up Face = iota
	Left
	Front
	Right
	Back
	Down
)

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// Color is a facelet color.
//
// The ordinal order mirrors Face so that the solved color of face f is
// simply Color(f): White on Up, Green on Left, Red on Front, Blue on Right,
// Orange on Back, Yellow on Down.
type Color int

const (
	White Color = iota
	Green
	Red
	Blue
	Orange
	Yellow
)

// Letter returns the single-letter abbreviation of the color (W, G, R, B,
// O, Y), used for display and for corner signature strings.
func (c Color) Letter() byte {
	switch c {
	case White:
		return 'W'
	case Green:
		return 'G'
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Orange:
		return 'O'
	case Yellow:
		return 'Y'
	default:
		return '?'
	}
}

func (c Color) String() string {
	return string(c.Letter())
}

// SolvedColor returns the color a face shows in the solved state.
func SolvedColor(f Face) Color {
	return Color(f)
}

// Cube is the contract every concrete cube representation satisfies.
//
// A Cube is mutated in place by Move and Invert, which return the same
// instance so calls can be chained:
//
//	c.Move(F).Move(U).Invert(F)
//
// A Cube is not safe for concurrent mutation; callers that branch into
// hypothetical states (search algorithms) must work on Clone copies.
type Cube interface {
	// ColorAt returns the color occupying (face, row, col). Rows count
	// top to bottom and columns left to right with the face toward the
	// viewer in the planar cross orientation. Out-of-range arguments
	// panic: they are a contract violation, never silently clamped.
	ColorAt(f Face, row, col int) Color

	// IsSolved reports whether every face uniformly shows its own
	// solved color.
	IsSolved() bool

	// Move applies one of the 18 moves, mutating the cube in place.
	Move(m Move) Cube

	// Invert applies the move that undoes m, mutating in place.
	Invert(m Move) Cube

	// Clone returns an independent deep copy.
	Clone() Cube
}

// Representation names accepted by NewCube.
const (
	RepFacelet  = "facelet"
	RepFlat     = "flat"
	RepBitboard = "bitboard"
)

// NewCube constructs a solved cube using the named representation.
func NewCube(rep string) (Cube, error) {
	switch rep {
	case RepFacelet:
		return NewFaceletCube(), nil
	case RepFlat:
		return NewFlatCube(), nil
	case RepBitboard:
		return NewBitboardCube(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRepresentation, rep)
	}
}

// Representations lists the names accepted by NewCube.
var Representations = []string{RepFacelet, RepFlat, RepBitboard}

// Apply applies a sequence of moves and returns the same cube.
func Apply(c Cube, moves ...Move) Cube {
	for _, m := range moves {
		c.Move(m)
	}
	return c
}

// Equal reports whether two cubes show the same color at every one of the
// 54 (face, row, col) cells. It works across representations.
func Equal(a, b Cube) bool {
	for f := Up; f <= Down; f++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if a.ColorAt(f, row, col) != b.ColorAt(f, row, col) {
					return false
				}
			}
		}
	}
	return true
}

// checkCell panics when a facelet address is out of range.
func checkCell(f Face, row, col int) {
	if f < Up || f > Down || row < 0 || row > 2 || col < 0 || col > 2 {
		panic(fmt.Sprintf("cubekit: facelet address out of range: face=%d row=%d col=%d", f, row, col))
	}
}
