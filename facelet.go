package cubekit

// cell addresses a single facelet.
type cell struct {
	f    Face
	r, c int
}

// sideCycles describes, for each turning face, the four 3-facelet strips on
// the neighboring faces that cycle under a clockwise quarter turn. Strip k
// moves onto strip k+1 (mod 4), with positions corresponding index-wise.
//
// The tables encode the planar cross orientation documented on Cube.ColorAt:
// U row 0 borders B, D row 0 borders F, L col 2 borders F, R col 0 borders
// F, B col 0 borders R.
var sideCycles = [6][4][3]cell{
	Up: {
		{{Front, 0, 0}, {Front, 0, 1}, {Front, 0, 2}},
		{{Left, 0, 0}, {Left, 0, 1}, {Left, 0, 2}},
		{{Back, 0, 0}, {Back, 0, 1}, {Back, 0, 2}},
		{{Right, 0, 0}, {Right, 0, 1}, {Right, 0, 2}},
	},
	Down: {
		{{Front, 2, 0}, {Front, 2, 1}, {Front, 2, 2}},
		{{Right, 2, 0}, {Right, 2, 1}, {Right, 2, 2}},
		{{Back, 2, 0}, {Back, 2, 1}, {Back, 2, 2}},
		{{Left, 2, 0}, {Left, 2, 1}, {Left, 2, 2}},
	},
	Front: {
		{{Up, 2, 0}, {Up, 2, 1}, {Up, 2, 2}},
		{{Right, 0, 0}, {Right, 1, 0}, {Right, 2, 0}},
		{{Down, 0, 2}, {Down, 0, 1}, {Down, 0, 0}},
		{{Left, 2, 2}, {Left, 1, 2}, {Left, 0, 2}},
	},
	Back: {
		{{Up, 0, 0}, {Up, 0, 1}, {Up, 0, 2}},
		{{Left, 2, 0}, {Left, 1, 0}, {Left, 0, 0}},
		{{Down, 2, 2}, {Down, 2, 1}, {Down, 2, 0}},
		{{Right, 0, 2}, {Right, 1, 2}, {Right, 2, 2}},
	},
	Left: {
		{{Up, 0, 0}, {Up, 1, 0}, {Up, 2, 0}},
		{{Front, 0, 0}, {Front, 1, 0}, {Front, 2, 0}},
		{{Down, 0, 0}, {Down, 1, 0}, {Down, 2, 0}},
		{{Back, 2, 2}, {Back, 1, 2}, {Back, 0, 2}},
	},
	Right: {
		{{Up, 0, 2}, {Up, 1, 2}, {Up, 2, 2}},
		{{Back, 2, 0}, {Back, 1, 0}, {Back, 0, 0}},
		{{Down, 0, 2}, {Down, 1, 2}, {Down, 2, 2}},
		{{Front, 0, 2}, {Front, 1, 2}, {Front, 2, 2}},
	},
}

// FaceletCube stores the cube as a 3D array of facelets, indexed by
// (face, row, col). It is the most direct encoding of the model.
type FaceletCube struct {
	facelets [6][3][3]Color
}

// NewFaceletCube creates a solved facelet cube.
func NewFaceletCube() *FaceletCube {
	c := &FaceletCube{}
	for f := Up; f <= Down; f++ {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				c.facelets[f][r][col] = SolvedColor(f)
			}
		}
	}
	return c
}

// ColorAt returns the color at (face, row, col).
func (c *FaceletCube) ColorAt(f Face, row, col int) Color {
	checkCell(f, row, col)
	return c.facelets[f][row][col]
}

// IsSolved reports whether every face uniformly shows its solved color.
func (c *FaceletCube) IsSolved() bool {
	for f := Up; f <= Down; f++ {
		want := SolvedColor(f)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if c.facelets[f][r][col] != want {
					return false
				}
			}
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (c *FaceletCube) Clone() Cube {
	clone := *c
	return &clone
}

// rotateFaceCW rotates a face's own 3x3 grid 90 degrees clockwise.
func (c *FaceletCube) rotateFaceCW(f Face) {
	old := c.facelets[f]
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			c.facelets[f][r][col] = old[2-col][r]
		}
	}
}

// turnCW applies a clockwise quarter turn of the given face: the face's own
// grid rotates and the four adjacent strips cycle.
func (c *FaceletCube) turnCW(f Face) {
	c.rotateFaceCW(f)

	strips := &sideCycles[f]
	var saved [3]Color
	for i := 0; i < 3; i++ {
		saved[i] = c.facelets[strips[3][i].f][strips[3][i].r][strips[3][i].c]
	}
	for s := 3; s > 0; s-- {
		for i := 0; i < 3; i++ {
			src := strips[s-1][i]
			dst := strips[s][i]
			c.facelets[dst.f][dst.r][dst.c] = c.facelets[src.f][src.r][src.c]
		}
	}
	for i := 0; i < 3; i++ {
		c.facelets[strips[0][i].f][strips[0][i].r][strips[0][i].c] = saved[i]
	}
}

// turnCCW is three clockwise quarter turns.
func (c *FaceletCube) turnCCW(f Face) {
	c.turnCW(f)
	c.turnCW(f)
	c.turnCW(f)
}

// Move applies one of the 18 moves. The dispatch is a closed table: every
// move maps to a dedicated layer transformation.
func (c *FaceletCube) Move(m Move) Cube {
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
func (c *FaceletCube) Invert(m Move) Cube {
	return c.Move(m.Inverse())
}
