package cubekit

import "math/bits"

// BitboardCube packs each face into one uint64: the eight non-center
// facelets occupy one byte each, ordered clockwise around the face starting
// at (0,0):
//
//	byte 0 1 2           (0,0) (0,1) (0,2)
//	byte 7   3     <->   (1,0)       (1,2)
//	byte 6 5 4           (2,0) (2,1) (2,2)
//
// Centers never move under face turns, so they are not stored; ColorAt
// answers them from the solved mapping. A clockwise quarter turn of the
// face's own sticker ring is a single 16-bit word rotation.
type BitboardCube struct {
	words [6]uint64
}

// ringPos maps (row, col) to the clockwise ring position; the center is -1.
var ringPos = [3][3]int{
	{0, 1, 2},
	{7, -1, 3},
	{6, 5, 4},
}

// bitCycles lists, per turning face, the four adjacent strips as
// (face, ring position) pairs, in the same cycle order as sideCycles.
var bitCycles = [6][4][3]struct{ f Face; pos int }{
	Up: {
		{{Front, 0}, {Front, 1}, {Front, 2}},
		{{Left, 0}, {Left, 1}, {Left, 2}},
		{{Back, 0}, {Back, 1}, {Back, 2}},
		{{Right, 0}, {Right, 1}, {Right, 2}},
	},
	Down: {
		{{Front, 6}, {Front, 5}, {Front, 4}},
		{{Right, 6}, {Right, 5}, {Right, 4}},
		{{Back, 6}, {Back, 5}, {Back, 4}},
		{{Left, 6}, {Left, 5}, {Left, 4}},
	},
	Front: {
		{{Up, 6}, {Up, 5}, {Up, 4}},
		{{Right, 0}, {Right, 7}, {Right, 6}},
		{{Down, 2}, {Down, 1}, {Down, 0}},
		{{Left, 4}, {Left, 3}, {Left, 2}},
	},
	Back: {
		{{Up, 0}, {Up, 1}, {Up, 2}},
		{{Left, 6}, {Left, 7}, {Left, 0}},
		{{Down, 4}, {Down, 5}, {Down, 6}},
		{{Right, 2}, {Right, 3}, {Right, 4}},
	},
	Left: {
		{{Up, 0}, {Up, 7}, {Up, 6}},
		{{Front, 0}, {Front, 7}, {Front, 6}},
		{{Down, 0}, {Down, 7}, {Down, 6}},
		{{Back, 4}, {Back, 3}, {Back, 2}},
	},
	Right: {
		{{Up, 2}, {Up, 3}, {Up, 4}},
		{{Back, 6}, {Back, 7}, {Back, 0}},
		{{Down, 2}, {Down, 3}, {Down, 4}},
		{{Front, 2}, {Front, 3}, {Front, 4}},
	},
}

// solvedWord is the packed ring word of face f when solved.
func solvedWord(f Face) uint64 {
	return uint64(SolvedColor(f)) * 0x0101010101010101
}

// NewBitboardCube creates a solved bitboard cube.
func NewBitboardCube() *BitboardCube {
	c := &BitboardCube{}
	for f := Up; f <= Down; f++ {
		c.words[f] = solvedWord(f)
	}
	return c
}

func (c *BitboardCube) getByte(f Face, pos int) Color {
	return Color(c.words[f] >> (uint(pos) * 8) & 0xFF)
}

func (c *BitboardCube) setByte(f Face, pos int, col Color) {
	shift := uint(pos) * 8
	c.words[f] = c.words[f]&^(0xFF<<shift) | uint64(col)<<shift
}

// ColorAt returns the color at (face, row, col).
func (c *BitboardCube) ColorAt(f Face, row, col int) Color {
	checkCell(f, row, col)
	pos := ringPos[row][col]
	if pos < 0 {
		return SolvedColor(f)
	}
	return c.getByte(f, pos)
}

// IsSolved reports whether every face uniformly shows its solved color.
func (c *BitboardCube) IsSolved() bool {
	for f := Up; f <= Down; f++ {
		if c.words[f] != solvedWord(f) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (c *BitboardCube) Clone() Cube {
	clone := *c
	return &clone
}

// turnCW applies a clockwise quarter turn: rotate the face's own ring by
// two byte positions and cycle the four adjacent strips.
func (c *BitboardCube) turnCW(f Face) {
	c.words[f] = bits.RotateLeft64(c.words[f], 16)

	strips := &bitCycles[f]
	var saved [3]Color
	for i := 0; i < 3; i++ {
		saved[i] = c.getByte(strips[3][i].f, strips[3][i].pos)
	}
	for s := 3; s > 0; s-- {
		for i := 0; i < 3; i++ {
			c.setByte(strips[s][i].f, strips[s][i].pos,
				c.getByte(strips[s-1][i].f, strips[s-1][i].pos))
		}
	}
	for i := 0; i < 3; i++ {
		c.setByte(strips[0][i].f, strips[0][i].pos, saved[i])
	}
}

// turnCCW rotates the ring the other way and cycles the strips in reverse.
func (c *BitboardCube) turnCCW(f Face) {
	c.words[f] = bits.RotateLeft64(c.words[f], -16)

	strips := &bitCycles[f]
	var saved [3]Color
	for i := 0; i < 3; i++ {
		saved[i] = c.getByte(strips[0][i].f, strips[0][i].pos)
	}
	for s := 0; s < 3; s++ {
		for i := 0; i < 3; i++ {
			c.setByte(strips[s][i].f, strips[s][i].pos,
				c.getByte(strips[s+1][i].f, strips[s+1][i].pos))
		}
	}
	for i := 0; i < 3; i++ {
		c.setByte(strips[3][i].f, strips[3][i].pos, saved[i])
	}
}

// Move applies one of the 18 moves via a closed dispatch table.
func (c *BitboardCube) Move(m Move) Cube {
	switch m {
	case L:
		c.turnCW(Left)
	case LPrime:
		c.turnCCW(Left)
	case L2:
		c.turnCW(Left)
		c.turnCW(Left)
	case R:
		c.turnCW(Right)
	case RPrime:
		c.turnCCW(Right)
	case R2:
		c.turnCW(Right)
		c.turnCW(Right)
	case U:
		c.turnCW(Up)
	case UPrime:
		c.turnCCW(Up)
	case U2:
		c.turnCW(Up)
		c.turnCW(Up)
	case D:
		c.turnCW(Down)
	case DPrime:
		c.turnCCW(Down)
	case D2:
		c.turnCW(Down)
		c.turnCW(Down)
	case F:
		c.turnCW(Front)
	case FPrime:
		c.turnCCW(Front)
	case F2:
		c.turnCW(Front)
		c.turnCW(Front)
	case B:
		c.turnCW(Back)
	case BPrime:
		c.turnCCW(Back)
	case B2:
		c.turnCW(Back)
		c.turnCW(Back)
	default:
		panic("cubekit: invalid move " + m.Name())
	}
	return c
}

// Invert applies the move that undoes m.
func (c *BitboardCube) Invert(m Move) Cube {
	return c.Move(m.Inverse())
}
