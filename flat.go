package cubekit

// flatIndex maps (face, row, col) onto the 54-cell array.
func flatIndex(f Face, row, col int) int {
	return int(f)*9 + row*3 + col
}

// flatCycles is sideCycles expressed as flattened indices, kept as literal
// tables so the flat representation stands on its own transformation data.
var flatCycles = [6][4][3]int{
	Up:    {{18, 19, 20}, {9, 10, 11}, {36, 37, 38}, {27, 28, 29}},
	Down:  {{24, 25, 26}, {33, 34, 35}, {42, 43, 44}, {15, 16, 17}},
	Front: {{6, 7, 8}, {27, 30, 33}, {47, 46, 45}, {17, 14, 11}},
	Back:  {{0, 1, 2}, {15, 12, 9}, {53, 52, 51}, {29, 32, 35}},
	Left:  {{0, 3, 6}, {18, 21, 24}, {45, 48, 51}, {44, 41, 38}},
	Right: {{2, 5, 8}, {42, 39, 36}, {47, 50, 53}, {20, 23, 26}},
}

// FlatCube stores the cube as a single flattened array of 54 facelets in
// face-major order, nine cells per face row by row.
type FlatCube struct {
	facelets [54]Color
}

// NewFlatCube creates a solved flat cube.
func NewFlatCube() *FlatCube {
	c := &FlatCube{}
	for i := range c.facelets {
		c.facelets[i] = Color(i / 9)
	}
	return c
}

// ColorAt returns the color at (face, row, col).
func (c *FlatCube) ColorAt(f Face, row, col int) Color {
	checkCell(f, row, col)
	return c.facelets[flatIndex(f, row, col)]
}

// IsSolved reports whether every face uniformly shows its solved color.
func (c *FlatCube) IsSolved() bool {
	for i, col := range c.facelets {
		if col != Color(i/9) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (c *FlatCube) Clone() Cube {
	clone := *c
	return &clone
}

// rotateFaceCW rotates a face's nine cells 90 degrees clockwise in place.
// Corners cycle 0->2->8->6, edges 1->5->7->3 within the face block.
func (c *FlatCube) rotateFaceCW(f Face) {
	base := int(f) * 9
	p := c.facelets[base : base+9]

	tmp := p[0]
	p[0] = p[6]
	p[6] = p[8]
	p[8] = p[2]
	p[2] = tmp

	tmp = p[1]
	p[1] = p[3]
	p[3] = p[7]
	p[7] = p[5]
	p[5] = tmp
}

// turnCW applies a clockwise quarter turn of f.
func (c *FlatCube) turnCW(f Face) {
	c.rotateFaceCW(f)

	strips := &flatCycles[f]
	var saved [3]Color
	for i := 0; i < 3; i++ {
		saved[i] = c.facelets[strips[3][i]]
	}
	for s := 3; s > 0; s-- {
		for i := 0; i < 3; i++ {
			c.facelets[strips[s][i]] = c.facelets[strips[s-1][i]]
		}
	}
	for i := 0; i < 3; i++ {
		c.facelets[strips[0][i]] = saved[i]
	}
}

func (c *FlatCube) turnCCW(f Face) {
	c.turnCW(f)
	c.turnCW(f)
	c.turnCW(f)
}

// Move applies one of the 18 moves via a closed dispatch table.
func (c *FlatCube) Move(m Move) Cube {
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
func (c *FlatCube) Invert(m Move) Cube {
	return c.Move(m.Inverse())
}
