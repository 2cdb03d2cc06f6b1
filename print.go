package cubekit

import "strings"

// PlanarString renders the cube in the planar cross layout, one letter per
// facelet:
//
//	      U
//	L  F  R  B
//	      D
func PlanarString(c Cube) string {
	var b strings.Builder

	writeRow := func(f Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteByte(c.ColorAt(f, row, col).Letter())
			if col < 2 {
				b.WriteByte(' ')
			}
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("        ")
		writeRow(Up, row)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for row := 0; row < 3; row++ {
		for i, f := range []Face{Left, Front, Right, Back} {
			if i > 0 {
				b.WriteString("   ")
			}
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for row := 0; row < 3; row++ {
		b.WriteString("        ")
		writeRow(Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
