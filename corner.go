package cubekit

import (
	"fmt"
	"sort"
)

// The eight corner positions, indexed 0..7. Each entry lists the corner's
// three facelets in the canonical reading order: the Up/Down sticker first,
// then the Front/Back sticker, then the Left/Right sticker.
var cornerCells = [8][3]cell{
	{{Up, 2, 2}, {Front, 0, 2}, {Right, 0, 0}},   // 0: UFR
	{{Up, 2, 0}, {Front, 0, 0}, {Left, 0, 2}},    // 1: UFL
	{{Up, 0, 0}, {Back, 0, 2}, {Left, 0, 0}},     // 2: UBL
	{{Up, 0, 2}, {Back, 0, 0}, {Right, 0, 2}},    // 3: UBR
	{{Down, 0, 2}, {Front, 2, 2}, {Right, 2, 0}}, // 4: DFR
	{{Down, 0, 0}, {Front, 2, 0}, {Left, 2, 2}},  // 5: DFL
	{{Down, 2, 2}, {Back, 2, 0}, {Right, 2, 2}},  // 6: DBR
	{{Down, 2, 0}, {Back, 2, 2}, {Left, 2, 0}},   // 7: DBL
}

// solvedCornerSignatures holds the signature each corner position shows in
// the solved state, in the canonical reading order above.
var solvedCornerSignatures = [8]string{
	"WRB", "WRG", "WOG", "WOB",
	"YRB", "YRG", "YOB", "YOG",
}

func checkCornerIndex(ind int) {
	if ind < 0 || ind > 7 {
		panic(fmt.Sprintf("cubekit: corner index out of range: %d", ind))
	}
}

// CornerColorString returns the 3-letter color signature currently shown at
// corner position ind, read off the live facelets in canonical order.
func CornerColorString(c Cube, ind int) string {
	checkCornerIndex(ind)
	cells := cornerCells[ind]
	sig := make([]byte, 3)
	for i, cl := range cells {
		sig[i] = c.ColorAt(cl.f, cl.r, cl.c).Letter()
	}
	return string(sig)
}

// sortLetters returns the signature's letters in sorted order, for
// orientation-insensitive comparison.
func sortLetters(sig string) string {
	b := []byte(sig)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// CornerIndex returns which of the eight solved-corner identities currently
// occupies position ind, by matching the corner's color signature (ignoring
// orientation) against the solved signatures. A signature that matches no
// identity signals a corrupt or unreachable state and yields an error.
func CornerIndex(c Cube, ind int) (int, error) {
	sig := sortLetters(CornerColorString(c, ind))
	for id, solved := range solvedCornerSignatures {
		if sortLetters(solved) == sig {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: corner %d has signature %q", ErrCorruptState, ind, CornerColorString(c, ind))
}

// CornerOrientation returns the corner's twist relative to solved: the
// position (0, 1 or 2) of its Up/Down-layer sticker within the signature.
// Together with CornerIndex it forms a pattern-database lookup key.
func CornerOrientation(c Cube, ind int) (int, error) {
	sig := CornerColorString(c, ind)
	for i := 0; i < 3; i++ {
		if sig[i] == 'W' || sig[i] == 'Y' {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: corner %d has signature %q", ErrCorruptState, ind, sig)
}
